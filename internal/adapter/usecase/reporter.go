package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"pixel-match/internal/core/domain"
	"pixel-match/internal/core/port"
)

const (
	matchAlert = "The maid and cookie to hhid matches are now available."
	failAlert  = "The match query failed to return any results for this run."
)

// Reporter posts match results as ticket comments.
type Reporter struct {
	tickets    port.Ticketing
	addressing domain.Addressing
	label      string
	printer    *message.Printer
}

// NewReporter creates a reporter. When label is not empty it is added to
// the pixel ticket after a successful report.
func NewReporter(tickets port.Ticketing, addressing domain.Addressing, label string) *Reporter {
	return &Reporter{
		tickets:    tickets,
		addressing: addressing,
		label:      label,
		printer:    message.NewPrinter(language.English),
	}
}

// Success posts the counts and rates to the pixel ticket and, when known,
// to the measurement ticket.
func (r *Reporter) Success(ctx context.Context, logger *slog.Logger, link domain.ParentLink, o domain.MatchOutcome) {
	body := r.matchBody(link.Unit.Pixel, o)
	r.post(ctx, logger, link.Unit.TicketKey, domain.Parties{}, body)
	if r.label != "" {
		if err := r.tickets.AddLabel(ctx, link.Unit.TicketKey, r.label); err != nil {
			logger.Error("could not label ticket", "label", r.label, "error", err)
		}
	}
	if link.HasMeasurement() {
		r.post(ctx, logger, link.MeasurementTicket, link.Parties, body)
	}
}

// Failure posts a failure alert to the pixel ticket and, when known, to the
// measurement ticket.
func (r *Reporter) Failure(ctx context.Context, logger *slog.Logger, link domain.ParentLink) {
	body := r.failBody(link.Unit.Pixel)
	r.post(ctx, logger, link.Unit.TicketKey, domain.Parties{}, body)
	if link.HasMeasurement() {
		r.post(ctx, logger, link.MeasurementTicket, link.Parties, body)
	}
}

func (r *Reporter) post(ctx context.Context, logger *slog.Logger, key string, parties domain.Parties, body string) {
	text := mentions(r.addressing.Attention(parties)) + body
	if err := r.tickets.PostComment(ctx, key, text); err != nil {
		logger.Error("could not comment on ticket", "comment_ticket", key, "error", err)
		return
	}
	logger.Info("comment added to ticket", "comment_ticket", key)
}

func mentions(names []string) string {
	var b strings.Builder
	for _, n := range names {
		fmt.Fprintf(&b, "[~%s] ", n)
	}
	return b.String()
}

func (r *Reporter) matchBody(p domain.Pixel, o domain.MatchOutcome) string {
	var b strings.Builder
	b.WriteString(matchAlert + "\n\n")
	writePixel(&b, p)
	b.WriteString("||Match Basis||Rate||\n")
	fmt.Fprintf(&b, "|MAIDs|%s|\n", o.HashedRate)
	fmt.Fprintf(&b, "|Cookies|%s|\n", o.CookieRate)
	fmt.Fprintf(&b, "|Full|%s|\n\n", o.FullRate)
	b.WriteString("||Matches||Count||\n")
	rows := []struct {
		label string
		count int64
	}{
		{"Total Imprs with Hashed Maids", o.HashedCounted},
		{"Total Imprs w/hashed Maids matched to a HH", o.HashedMatched},
		{"Total Imprs with unhashed MAIDS", o.UnhashedCounted},
		{"Total Imprs w/unhashed MAIDs matched to a HH", o.UnhashedMatched},
		{"Total Imprs with cookie IDs", o.CookieCounted},
		{"Total Imprs w/cookie IDs matched to a HH", o.CookieMatched},
		{"Total Imprs with IDs captured", o.TotalCounted},
		{"Total Imprs/w IDs matched to a HH", o.TotalMatched},
	}
	for _, row := range rows {
		b.WriteString(r.printer.Sprintf("|%s|Q = %d|\n", row.label, row.count))
	}
	return b.String()
}

func (r *Reporter) failBody(p domain.Pixel) string {
	var b strings.Builder
	b.WriteString(failAlert + "\n\n")
	writePixel(&b, p)
	return b.String()
}

func writePixel(b *strings.Builder, p domain.Pixel) {
	fmt.Fprintf(b, "Pixel =>          *%s*\n", p.ID)
	fmt.Fprintf(b, "Campaign Name =>  *%s*\n\n", p.Name)
}
