package avatar

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

const ssmlTemplate = `<speak version='1.0' xmlns='http://www.w3.org/2001/10/synthesis' ` +
	`xmlns:mstts='http://www.w3.org/2001/mstts' xml:lang='en-US'>` +
	`<voice name='%s'><mstts:ttsembedding speakerProfileId='%s'>` +
	`<mstts:leadingsilence-exact value='0'/>%s</mstts:ttsembedding></voice></speak>`

// SSML wraps text for the avatar synthesizer using the selection's voice.
func (s Selection) SSML(text string) (string, error) {
	if s.Voice == "" {
		return "", ErrEmptyVoice
	}
	return fmt.Sprintf(ssmlTemplate, escape(s.Voice), escape(s.SpeakerProfileID), escape(text)), nil
}

func escape(v string) string {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(v))
	return b.String()
}
