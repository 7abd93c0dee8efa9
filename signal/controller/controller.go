package controller

import (
	"avatar/broker"
	"avatar/session"
	"avatar/types/api/request"
	"avatar/types/api/response"
	"avatar/types/avatar"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Controller serves the control API on top of a session.
type Controller struct {
	session  Session
	hooks    broker.Subscriber
	metrics  Metrics
	defaults avatar.Selection
	clientID string
	debug    bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithMetrics counts hook stream connections on m.
func WithMetrics(m Metrics) Option {
	return func(c *Controller) {
		c.metrics = m
	}
}

// WithDebug exposes error details in responses.
func WithDebug(debug bool) Option {
	return func(c *Controller) {
		c.debug = debug
	}
}

// New creates a new instance of Controller. defaults is used by starts that carry
// no selection of their own.
func New(s Session, hooks broker.Subscriber, defaults avatar.Selection, clientID string, opts ...Option) *Controller {
	c := &Controller{
		session:  s,
		hooks:    hooks,
		defaults: defaults,
		clientID: clientID,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Register mounts the routes on r.
func (c *Controller) Register(r gin.IRouter) {
	api := r.Group("/api")
	api.GET("/session", c.getSession)
	api.POST("/session/start", c.start)
	api.POST("/session/stop", c.stop)
	api.POST("/speak", c.speak)
	api.POST("/stopSpeaking", c.stopSpeaking)
	api.POST("/microphone/error", c.microphoneError)
	api.GET("/characters", c.characters)

	r.GET("/ws/events", c.events)
}

func (c *Controller) getSession(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.view())
}

func (c *Controller) start(ctx *gin.Context) {
	var req request.Start
	if err := bindOptional(ctx, &req); err != nil {
		c.Error(ctx, err, http.StatusBadRequest)
		return
	}

	if err := c.session.Start(ctx.Request.Context(), c.selection(req.Selection)); err != nil {
		c.Error(ctx, err, statusOf(err))
		return
	}
	ctx.JSON(http.StatusAccepted, c.view())
}

func (c *Controller) stop(ctx *gin.Context) {
	if err := c.session.Stop(ctx.Request.Context()); err != nil {
		c.Error(ctx, err, statusOf(err))
		return
	}
	ctx.JSON(http.StatusAccepted, c.view())
}

func (c *Controller) speak(ctx *gin.Context) {
	var req request.Speak
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.Error(ctx, err, http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		c.Error(ctx, errors.New("text is empty"), http.StatusBadRequest)
		return
	}

	id, err := c.say(ctx, req.Text)
	if err != nil {
		c.Error(ctx, err, statusOf(err))
		return
	}
	ctx.JSON(http.StatusOK, response.Speak{ResultID: id})
}

func (c *Controller) stopSpeaking(ctx *gin.Context) {
	if err := c.session.StopSpeaking(ctx.Request.Context()); err != nil {
		c.Error(ctx, err, statusOf(err))
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *Controller) microphoneError(ctx *gin.Context) {
	var req request.MicrophoneError
	if err := bindOptional(ctx, &req); err != nil {
		c.Error(ctx, err, http.StatusBadRequest)
		return
	}
	err := session.ErrMicrophone
	if req.Message != "" {
		err = errors.New(req.Message)
	}
	c.session.ReportMicrophoneError(err)
	ctx.Status(http.StatusNoContent)
}

func (c *Controller) characters(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, avatar.Styles)
}

// say renders text as SSML with the voice of the running session.
func (c *Controller) say(ctx *gin.Context, text string) (string, error) {
	snap := c.session.Snapshot()
	if snap.State != session.Active {
		return "", session.ErrNotActive
	}
	ssml, err := snap.Selection.SSML(text)
	if err != nil {
		return "", err
	}
	return c.session.Speak(ctx.Request.Context(), ssml)
}

// selection fills the fields a caller left empty from the configured defaults.
func (c *Controller) selection(sel *avatar.Selection) avatar.Selection {
	if sel == nil {
		return c.defaults
	}
	out := *sel
	if out.Character == "" && out.Style == "" {
		out.Character, out.Style, out.IsCustom = c.defaults.Character, c.defaults.Style, c.defaults.IsCustom
	}
	if out.Voice == "" {
		out.Voice = c.defaults.Voice
	}
	if out.SpeakerProfileID == "" {
		out.SpeakerProfileID = c.defaults.SpeakerProfileID
	}
	return out
}

func (c *Controller) view() response.Session {
	snap := c.session.Snapshot()
	return response.Session{
		State:    snap.State.String(),
		Speaking: snap.Speaking,
		ClientID: c.clientID,
	}
}

// Error writes err with statusCode. Details are only exposed in debug mode.
func (c *Controller) Error(ctx *gin.Context, err error, statusCode int) {
	log.Debug().Str("module", "controller").Err(err).Int("status", statusCode).Str("path", ctx.FullPath()).Msg("request failed")
	if !c.debug {
		ctx.AbortWithStatusJSON(statusCode, response.Error{Error: http.StatusText(statusCode)})
		return
	}
	ctx.AbortWithStatusJSON(statusCode, response.Error{Error: err.Error()})
}

// bindOptional binds a JSON body when one was sent.
func bindOptional(ctx *gin.Context, obj any) error {
	if ctx.Request.Body == nil || ctx.Request.ContentLength == 0 {
		return nil
	}
	if err := ctx.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, session.ErrAlreadyStarted), errors.Is(err, session.ErrNotActive):
		return http.StatusConflict
	case errors.Is(err, session.ErrNotRunning):
		return http.StatusServiceUnavailable
	case errors.Is(err, avatar.ErrEmptyCharacter), errors.Is(err, avatar.ErrEmptyStyle),
		errors.Is(err, avatar.ErrUnknownAvatar), errors.Is(err, avatar.ErrUnknownStyle),
		errors.Is(err, avatar.ErrEmptyVoice):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}
