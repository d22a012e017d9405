package service

import (
	"context"
	"convbot/internal/core/domain"
	"convbot/internal/core/port"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

var ErrUnhandledUpdate = errors.New("no handler for update")

type RouterParams struct {
	Commands   port.CommandRegistry
	Language   port.Responder
	Upload     port.Responder
	Convert    port.Responder
	TextSender port.TextSender
	Metrics    port.Metrics
	Timeout    time.Duration
}

// Router sends each decoded update to the flow that handles it.
type Router struct {
	commands   port.CommandRegistry
	language   port.Responder
	upload     port.Responder
	convert    port.Responder
	textSender port.TextSender
	metrics    port.Metrics
	timeout    time.Duration
}

func NewRouter(p RouterParams) *Router {
	return &Router{
		commands:   p.Commands,
		language:   p.Language,
		upload:     p.Upload,
		convert:    p.Convert,
		textSender: p.TextSender,
		metrics:    p.Metrics,
		timeout:    p.Timeout,
	}
}

func (r *Router) Route(ctx context.Context, update *domain.Update) error {
	r.metrics.CountUpdate(update.Kind)

	switch update.Kind {
	case domain.KindCommand:
		cmd := ParseCommand(update.Text)
		handler, err := r.commands.Get(cmd)
		if err != nil {
			log.Debug().Str("command", cmd).Msg("no handler for command")
			return fmt.Errorf("%w: command %q: %w", ErrUnhandledUpdate, cmd, err)
		}
		return handler.Respond(ctx, r.timeout, update)
	case domain.KindCallback:
		return r.routeCallback(ctx, update)
	case domain.KindUpload:
		return r.upload.Respond(ctx, r.timeout, update)
	default:
		return fmt.Errorf("%w: kind %q", ErrUnhandledUpdate, update.Kind)
	}
}

func (r *Router) routeCallback(ctx context.Context, update *domain.Update) error {
	switch action := update.Action.(type) {
	case domain.SelectLanguage:
		return r.language.Respond(ctx, r.timeout, update)
	case domain.SelectFormat:
		return r.convert.Respond(ctx, r.timeout, update)
	case domain.UnknownAction:
		log.Debug().Str("data", action.Data).Int64("userId", update.UserID).Msg("dropping unknown callback")

		ctx, cancel := context.WithTimeout(ctx, r.timeout)
		defer cancel()

		if err := r.textSender.AnswerCallback(ctx, update.CallbackID); err != nil {
			return fmt.Errorf("failed to answer unknown callback: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: callback action %T", ErrUnhandledUpdate, update.Action)
	}
}

// ParseCommand returns the lower-cased first word of a command message, without a @botname suffix.
func ParseCommand(text string) string {
	command := strings.Split(strings.TrimSpace(text), " ")
	name, _, _ := strings.Cut(command[0], "@")
	return strings.ToLower(name)
}
