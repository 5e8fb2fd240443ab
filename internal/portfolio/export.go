package portfolio

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"risk-engine/internal/model"
)

var csvHeader = []string{"insurance_type", "risk_score", "tier", "premium_estimate", "annual_premium"}

// WriteCSV writes one row per completed line, in snapshot order.
func WriteCSV(w io.Writer, snap model.PortfolioSnapshot) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return errors.Wrap(err, "write csv header")
	}
	for _, e := range snap.Entries {
		row := []string{
			string(e.InsuranceType),
			strconv.FormatFloat(e.RiskScore, 'f', 1, 64),
			string(e.Tier),
			strconv.FormatInt(e.PremiumEstimate, 10),
			strconv.FormatInt(e.AnnualPremium, 10),
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "write csv row for %s", e.InsuranceType)
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flush csv")
}
