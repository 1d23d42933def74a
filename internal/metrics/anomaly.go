package metrics

import "github.com/pennywise-finance/pennywise/internal/model"

// IsUnusual reports whether candidate is unusually large for its
// category: strictly more than twice the mean amount of the prior
// transactions sharing the category. A category's first transaction is
// never flagged. This is a simple multiplicative-threshold heuristic,
// not a statistical outlier test.
//
// The comparison candidate > 2*mean is evaluated as
// candidate*n > 2*sum to stay exact in integers.
func IsUnusual(history []model.Transaction, candidate model.Transaction) bool {
	var sum int64
	var n int64
	for _, tx := range history {
		if tx.Category == candidate.Category {
			sum += tx.Amount
			n++
		}
	}
	if n == 0 {
		return false
	}
	return candidate.Amount*n > 2*sum
}
