package controller

import (
	"avatar/broker"
	"avatar/pkg/socket"
	"avatar/types/api/request"
	"avatar/types/avatar"
	clientrequest "avatar/types/client/request"
	"avatar/types/client/response"
	"avatar/types/message"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// events upgrades the request and streams hooks until the client goes away.
func (c *Controller) events(ctx *gin.Context) {
	s, err := socket.New(ctx.Writer, ctx.Request)
	if err != nil {
		log.Warn().Str("module", "controller").Err(err).Msg("failed to upgrade websocket")
		return
	}
	defer func() {
		if err := s.Close(); err != nil {
			log.Debug().Str("module", "controller").Err(err).Msg("failed to close websocket")
		}
	}()

	if err := c.Process(ctx.Request.Context(), s); err != nil {
		log.Debug().Str("module", "controller").Err(err).Msg("hook stream ended")
	}
}

// Process writes the current session view followed by every hook published after
// it, and executes commands read from s. It returns when reading fails.
func (c *Controller) Process(ctx context.Context, s socket.Socket) error {
	if c.metrics != nil {
		c.metrics.IncrementWebSocketConnections()
		defer c.metrics.DecrementWebSocketConnections()
	}

	sub, err := c.hooks.Subscribe(broker.HOOK)
	if err != nil {
		return fmt.Errorf("failed to subscribe hooks: %w", err)
	}
	defer func() {
		if err := c.hooks.Unsubscribe(broker.HOOK, sub); err != nil {
			log.Debug().Str("module", "controller").Err(err).Msg("failed to unsubscribe hooks")
		}
	}()

	snap := c.session.Snapshot()
	for _, msg := range []any{message.State{State: snap.State.String()}, snap.Controls} {
		if err := c.write(s, msg); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		c.sendHooks(ctx, s, sub.C())
	}()

	err = c.receiveRequests(ctx, s)
	cancel()
	<-done
	return err
}

func (c *Controller) sendHooks(ctx context.Context, s socket.Socket, hooks <-chan any) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-hooks:
			if !ok {
				return
			}
			if err := c.write(s, msg); err != nil {
				log.Debug().Str("module", "controller").Err(err).Msg("failed to send hook")
				return
			}
		}
	}
}

func (c *Controller) write(s socket.Socket, msg any) error {
	frame, err := response.FromMessage(msg)
	if err != nil {
		return err
	}
	if err := s.WriteJSON(frame); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	return nil
}

// receiveRequests reads commands until the socket fails. A rejected command is
// answered with an error frame and does not end the stream.
func (c *Controller) receiveRequests(ctx context.Context, s socket.Socket) error {
	for {
		var req clientrequest.Common
		if err := s.ReadJSON(&req); err != nil {
			return fmt.Errorf("failed to read request: %w", err)
		}
		if err := c.handleRequest(ctx, req); err != nil {
			log.Debug().Str("module", "controller").Err(err).Str("type", req.Type).Msg("request rejected")
			if err := s.WriteJSON(response.Error{
				Type:      response.ERROR,
				RequestID: req.RequestID,
				Message:   err.Error(),
			}); err != nil {
				return fmt.Errorf("failed to write error frame: %w", err)
			}
		}
	}
}

// handleRequest parses the request type and calls the session.
func (c *Controller) handleRequest(ctx context.Context, req clientrequest.Common) error {
	switch req.Type {
	case clientrequest.START:
		var sel *avatar.Selection
		if len(req.Payload) > 0 && string(req.Payload) != "null" {
			sel = &avatar.Selection{}
			if err := json.Unmarshal(req.Payload, sel); err != nil {
				return fmt.Errorf("failed to unmarshal start payload: %w", err)
			}
		}
		return c.session.Start(ctx, c.selection(sel))
	case clientrequest.STOP:
		return c.session.Stop(ctx)
	case clientrequest.SPEAK:
		var payload request.Speak
		if err := json.Unmarshal(req.Payload, &payload); err != nil {
			return fmt.Errorf("failed to unmarshal speak payload: %w", err)
		}
		if payload.Text == "" {
			return errors.New("text is empty")
		}
		snap := c.session.Snapshot()
		ssml, err := snap.Selection.SSML(payload.Text)
		if err != nil {
			return err
		}
		_, err = c.session.Speak(ctx, ssml)
		return err
	default:
		return fmt.Errorf("invalid request type: %s", req.Type)
	}
}
