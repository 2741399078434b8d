// Package currency renders monetary amounts with locale-specific
// large-number units.
package currency

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders amounts with a currency symbol and compact units.
// The zero-value-unsafe fields are set by New.
type Formatter struct {
	symbol  string
	printer *message.Printer
	lakh    bool // use lakh/crore units instead of thousand/million
}

// New creates a Formatter for the given locale tag. The Indian numbering
// system (lakh/crore) is used for Indic locales, matching how the risk
// figures are quoted in the source dataset's region.
func New(symbol string, tag language.Tag) *Formatter {
	if symbol == "" {
		symbol = "₹"
	}
	base, _ := tag.Base()
	return &Formatter{
		symbol:  symbol,
		printer: message.NewPrinter(tag),
		lakh:    base.String() == "hi" || base.String() == "en" && regionIsIndia(tag),
	}
}

// Default returns the formatter used across the dashboard: rupee symbol,
// Indian units.
func Default() *Formatter {
	return New("₹", language.MustParse("en-IN"))
}

func regionIsIndia(tag language.Tag) bool {
	region, _ := tag.Region()
	return region.String() == "IN"
}

// Format renders an amount as a human-readable currency string, scaling to
// the locale's large-number units. Invalid amounts render as zero.
func (f *Formatter) Format(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Sprintf("%s0.00", f.symbol)
	}

	abs := math.Abs(amount)
	if f.lakh {
		switch {
		case abs >= 1e7:
			return f.printer.Sprintf("%s%.2f Crore", f.symbol, amount/1e7)
		case abs >= 1e5:
			return f.printer.Sprintf("%s%.2f Lakh", f.symbol, amount/1e5)
		case abs >= 1e3:
			return f.printer.Sprintf("%s%.2fK", f.symbol, amount/1e3)
		default:
			return f.printer.Sprintf("%s%.2f", f.symbol, amount)
		}
	}

	switch {
	case abs >= 1e9:
		return f.printer.Sprintf("%s%.2fB", f.symbol, amount/1e9)
	case abs >= 1e6:
		return f.printer.Sprintf("%s%.2fM", f.symbol, amount/1e6)
	case abs >= 1e3:
		return f.printer.Sprintf("%s%.2fK", f.symbol, amount/1e3)
	default:
		return f.printer.Sprintf("%s%.2f", f.symbol, amount)
	}
}
