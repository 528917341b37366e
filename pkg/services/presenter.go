package services

import (
	"github.com/kerbaras/comics/pkg/i18n"
)

// ErrorPresenter shows the "no comics found" state. Repeated calls never
// stack messages: the display holds one panel and unchanged messages are
// not sent again.
type ErrorPresenter struct {
	display  Display
	messages *i18n.Messages
	current  *ErrorMessage
}

func NewErrorPresenter(display Display, messages *i18n.Messages) *ErrorPresenter {
	if messages == nil {
		messages = i18n.For()
	}
	return &ErrorPresenter{display: display, messages: messages}
}

func (p *ErrorPresenter) ShowNoComicsFound() {
	p.show(p.base())
}

// ShowImageLoadFailed is the no comics state extended with the label of the
// comic that failed.
func (p *ErrorPresenter) ShowImageLoadFailed(label string) {
	msg := p.base()
	msg.Detail = p.messages.ImageFailedText(label)
	p.show(msg)
}

func (p *ErrorPresenter) Shown() bool {
	return p.current != nil
}

func (p *ErrorPresenter) Clear() {
	if p.current == nil {
		return
	}
	p.current = nil
	p.display.ClearError()
}

func (p *ErrorPresenter) base() ErrorMessage {
	return ErrorMessage{
		Label: p.messages.Placeholder,
		Title: p.messages.NoComicsTitle,
		Text:  p.messages.NoComicsText,
		Hint:  p.messages.NoComicsHint,
	}
}

func (p *ErrorPresenter) show(msg ErrorMessage) {
	if p.current != nil && *p.current == msg {
		return
	}
	p.current = &msg
	p.display.ShowError(msg)
}
