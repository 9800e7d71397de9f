package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsReceiptNo reports whether s looks like a receipt number issued by the
// ledger: digits only, valid Luhn check digit.
func IsReceiptNo(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
