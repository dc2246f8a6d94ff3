// Package notify emails staff when a visitor submits an inquiry, a
// booking or a volunteer application.
package notify

import (
	"context"
	"sync"
	"time"

	"travel-booking/logger"
	bookingTypes "travel-booking/types/booking"
	inquiryTypes "travel-booking/types/inquiry"
	volunteerTypes "travel-booking/types/volunteer"
)

const sendTimeout = 10 * time.Second

// Notifier sends submission emails in the background. A nil Notifier, or
// one without a sender or recipients, does nothing.
type Notifier struct {
	sender Sender
	to     []string
	wg     sync.WaitGroup
}

func New(sender Sender, to []string) *Notifier {
	return &Notifier{sender: sender, to: to}
}

func (n *Notifier) enabled() bool {
	return n != nil && n.sender != nil && len(n.to) > 0
}

func (n *Notifier) Inquiry(i inquiryTypes.Inquiry) {
	if !n.enabled() {
		return
	}
	n.dispatch(InquiryMessage(n.to, i))
}

func (n *Notifier) Booking(b bookingTypes.Booking) {
	if !n.enabled() {
		return
	}
	n.dispatch(BookingMessage(n.to, b))
}

func (n *Notifier) Application(a volunteerTypes.Application) {
	if !n.enabled() {
		return
	}
	n.dispatch(ApplicationMessage(n.to, a))
}

func (n *Notifier) dispatch(msg Message, err error) {
	if err != nil {
		logger.Error("Failed to build notification", err)
		return
	}
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()
		if err := n.sender.Send(ctx, msg); err != nil {
			logger.Error("Failed to send notification \""+msg.Subject+"\"", err)
		}
	}()
}

// Wait blocks until every queued notification has been attempted
func (n *Notifier) Wait() {
	if n == nil {
		return
	}
	n.wg.Wait()
}
