package usecase

import (
	"context"
	"errors"
	"log/slog"

	"pixel-match/internal/core/domain"
	"pixel-match/internal/core/port"
)

// Resolver turns eligible pixels into work units by looking up their
// tickets. Pixels without a ticket are reported to the notifier instead.
type Resolver struct {
	tickets    port.Ticketing
	notifier   port.Notifier
	ticketType string
	status     string
}

// NewResolver creates a resolver searching tickets of the given type and
// status.
func NewResolver(tickets port.Ticketing, notifier port.Notifier, ticketType, status string) *Resolver {
	return &Resolver{tickets: tickets, notifier: notifier, ticketType: ticketType, status: status}
}

// Resolve returns a work unit for every pixel with a ticket. For every other
// pixel a ticket-not-found alert is sent right away.
func (r *Resolver) Resolve(ctx context.Context, logger *slog.Logger, pixels []domain.Pixel) []domain.WorkUnit {
	units := make([]domain.WorkUnit, 0, len(pixels))
	for _, p := range pixels {
		key, err := r.lookup(ctx, p)
		if err != nil {
			if !errors.Is(err, domain.ErrNoTicket) {
				logger.Error("ticket search failed", "pixel", p.ID, "error", err)
			}
			logger.Warn("no ticket found for pixel", "pixel", p.ID, "campaign", p.Name)
			notify(ctx, logger, r.notifier, domain.TicketNotFound(p))
			continue
		}
		logger.Info("ticket found for pixel", "pixel", p.ID, "ticket", key)
		units = append(units, domain.WorkUnit{Pixel: p, TicketKey: key})
	}
	return units
}

func (r *Resolver) lookup(ctx context.Context, p domain.Pixel) (string, error) {
	key, err := r.tickets.FindTicket(ctx, r.ticketType, r.status, p.ID)
	if err != nil {
		return "", err
	}
	if key == "" {
		return "", domain.ErrNoTicket
	}
	return key, nil
}

// Link looks up the measurement ticket of a unit and the people named on
// it. Lookup failures leave the corresponding fields empty.
func (r *Resolver) Link(ctx context.Context, logger *slog.Logger, unit domain.WorkUnit) domain.ParentLink {
	link := domain.ParentLink{Unit: unit}
	parent, err := r.tickets.FindParent(ctx, unit.TicketKey)
	if err != nil {
		logger.Error("measurement ticket search failed", "error", err)
		return link
	}
	if parent == "" {
		logger.Warn("no measurement ticket found")
		return link
	}
	link.MeasurementTicket = parent
	parties, err := r.tickets.ReadParties(ctx, parent)
	if err != nil {
		logger.Error("could not read measurement ticket", "measurement_ticket", parent, "error", err)
		return link
	}
	link.Parties = parties
	logger.Info("measurement ticket found", "measurement_ticket", parent,
		"reporter", parties.Reporter, "lead_analyst", parties.LeadAnalyst)
	return link
}

// notify sends an alert and only logs delivery failures.
func notify(ctx context.Context, logger *slog.Logger, n port.Notifier, msg domain.Notification) {
	if err := n.Send(ctx, msg); err != nil {
		logger.Error("alert mail failed", "kind", msg.Kind.String(), "error", err)
		return
	}
	logger.Warn("alert mail sent", "kind", msg.Kind.String())
}
