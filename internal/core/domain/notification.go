package domain

import (
	"fmt"
	"strings"
)

// NotificationKind selects the body of an alert mail.
type NotificationKind int

const (
	// NotifyTicketNotFound is sent once per pixel without a matching ticket.
	NotifyTicketNotFound NotificationKind = iota
	// NotifyNoPixels is sent once per run when discovery found nothing to do.
	NotifyNoPixels
)

func (k NotificationKind) String() string {
	switch k {
	case NotifyTicketNotFound:
		return "ticket_not_found"
	case NotifyNoPixels:
		return "no_pixels"
	default:
		return "unknown"
	}
}

// Notification is an alert for the campaign management team.
type Notification struct {
	Kind  NotificationKind
	Pixel *Pixel
}

// TicketNotFound builds the alert for a pixel without ticket.
func TicketNotFound(p Pixel) Notification {
	return Notification{Kind: NotifyTicketNotFound, Pixel: &p}
}

// NoPixels builds the alert for a run without eligible pixels.
func NoPixels() Notification {
	return Notification{Kind: NotifyNoPixels}
}

// Body renders the plain text mail body.
func (n Notification) Body() string {
	var b strings.Builder
	b.WriteString("Campaign Management,\n\n")
	if n.Kind == NotifyTicketNotFound && n.Pixel != nil {
		end := "none"
		if n.Pixel.EndDate != nil {
			end = n.Pixel.EndDate.Format(QueryDateLayout)
		}
		b.WriteString("There seems to be a problem locating the Jira ticket. Please find details below:\n\n")
		fmt.Fprintf(&b, "Pixel: %s\n\n", n.Pixel.ID)
		fmt.Fprintf(&b, "Campaign Name: %s\n\n", n.Pixel.Name)
		fmt.Fprintf(&b, "Start Date: %s\n\n", n.Pixel.QueryStartDate())
		fmt.Fprintf(&b, "End Date: %s\n\n", end)
	} else {
		b.WriteString("There were no pixels to run today.\n\n")
	}
	b.WriteString("Thanks,\nCI Team")
	return b.String()
}
