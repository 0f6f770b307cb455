package pricing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/lifecalc/internal/models"
)

// FormatINR renders amount in rupees with Indian digit grouping, e.g.
// 1234567 becomes "₹12,34,567".
func FormatINR(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	digits := strconv.FormatInt(amount, 10)
	digits = strings.TrimPrefix(digits, "-")

	if len(digits) <= 3 {
		return sign + "₹" + digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)

	return sign + "₹" + strings.Join(groups, ",") + "," + tail
}

// Summary is a plain text estimate that can be shared as is.
func Summary(policyName string, r Result) string {
	var b strings.Builder

	if policyName == "" {
		policyName = string(r.Product)
	}
	fmt.Fprintf(&b, "Premium estimate: %s\n", policyName)
	fmt.Fprintf(&b, "Age: %d (band %s)\n", r.Age, r.AgeBand)
	fmt.Fprintf(&b, "Term: %d years\n", r.Term)
	fmt.Fprintf(&b, "Sum assured: %s\n", FormatINR(r.SumAssured))
	fmt.Fprintf(&b, "Payment: %s\n", r.FrequencyLabel())
	// base, rebate and loading stay yearly amounts for monthly payments
	period := ""
	if r.Frequency == models.FrequencyMonthly {
		period = " (yearly)"
	}
	fmt.Fprintf(&b, "Base premium%s: %s\n", period, FormatINR(r.BasePremium))
	if r.Rebate > 0 {
		fmt.Fprintf(&b, "High sum assured rebate%s: -%s\n", period, FormatINR(r.Rebate))
	}
	if r.RiderLoading > 0 {
		fmt.Fprintf(&b, "Rider loading%s: %s\n", period, FormatINR(r.RiderLoading))
	}
	fmt.Fprintf(&b, "Premium: %s\n", FormatINR(r.Premium))
	fmt.Fprintf(&b, "GST (%s): %s\n", GSTPercent, FormatINR(r.GST))
	fmt.Fprintf(&b, "Total: %s\n", FormatINR(r.Total))
	if r.Frequency != "" && r.TotalAnnual != r.Total {
		fmt.Fprintf(&b, "Total per year: %s\n", FormatINR(r.TotalAnnual))
	}
	if names := r.Riders.Names(); len(names) > 0 {
		fmt.Fprintf(&b, "Riders: %s\n", strings.Join(names, ", "))
	}
	if !r.MaturityDate.IsZero() {
		fmt.Fprintf(&b, "Maturity: %s\n", r.MaturityDate.Format("02 Jan 2006"))
	}
	return b.String()
}
