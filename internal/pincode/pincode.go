// Package pincode maps Indian postal-code prefixes to the states they
// belong to. Lookups try the 2-digit prefix first and fall back to the
// 1-digit postal zone.
package pincode

import "regexp"

var sixDigits = regexp.MustCompile(`^[0-9]{6}$`)

// statesByPrefix lists the states a PIN prefix can legally belong to.
// Two-digit entries refine the one-digit zone entries below them.
var statesByPrefix = map[string][]string{
	"11": {"Delhi"},
	"12": {"Haryana"},
	"13": {"Haryana"},
	"14": {"Punjab"},
	"15": {"Punjab"},
	"16": {"Punjab", "Chandigarh"},
	"17": {"Himachal Pradesh"},
	"18": {"Jammu and Kashmir", "Ladakh"},
	"19": {"Jammu and Kashmir", "Ladakh"},
	"20": {"Uttar Pradesh"},
	"21": {"Uttar Pradesh"},
	"22": {"Uttar Pradesh"},
	"23": {"Uttar Pradesh"},
	"24": {"Uttar Pradesh", "Uttarakhand"},
	"25": {"Uttar Pradesh", "Uttarakhand"},
	"26": {"Uttar Pradesh", "Uttarakhand"},
	"27": {"Uttar Pradesh"},
	"28": {"Uttar Pradesh"},
	"30": {"Rajasthan"},
	"31": {"Rajasthan"},
	"32": {"Rajasthan"},
	"33": {"Rajasthan"},
	"34": {"Rajasthan"},
	"36": {"Gujarat"},
	"37": {"Gujarat"},
	"38": {"Gujarat"},
	"39": {"Gujarat", "Dadra and Nagar Haveli and Daman and Diu"},
	"40": {"Maharashtra", "Goa"},
	"41": {"Maharashtra"},
	"42": {"Maharashtra"},
	"43": {"Maharashtra"},
	"44": {"Maharashtra"},
	"45": {"Madhya Pradesh"},
	"46": {"Madhya Pradesh"},
	"47": {"Madhya Pradesh"},
	"48": {"Madhya Pradesh"},
	"49": {"Chhattisgarh"},
	"50": {"Telangana"},
	"51": {"Andhra Pradesh"},
	"52": {"Andhra Pradesh"},
	"53": {"Andhra Pradesh"},
	"56": {"Karnataka"},
	"57": {"Karnataka"},
	"58": {"Karnataka"},
	"59": {"Karnataka"},
	"60": {"Tamil Nadu", "Puducherry"},
	"61": {"Tamil Nadu"},
	"62": {"Tamil Nadu"},
	"63": {"Tamil Nadu"},
	"64": {"Tamil Nadu", "Kerala"},
	"67": {"Kerala"},
	"68": {"Kerala", "Lakshadweep"},
	"69": {"Kerala", "Tamil Nadu"},
	"70": {"West Bengal"},
	"71": {"West Bengal"},
	"72": {"West Bengal"},
	"73": {"West Bengal", "Sikkim"},
	"74": {"West Bengal", "Andaman and Nicobar Islands"},
	"75": {"Odisha"},
	"76": {"Odisha"},
	"77": {"Odisha"},
	"78": {"Assam"},
	"79": {"Arunachal Pradesh", "Manipur", "Meghalaya", "Mizoram", "Nagaland", "Tripura"},
	"80": {"Bihar"},
	"81": {"Bihar", "Jharkhand"},
	"82": {"Bihar", "Jharkhand"},
	"83": {"Jharkhand"},
	"84": {"Bihar"},
	"85": {"Bihar", "Jharkhand"},

	// Zone fallbacks for prefixes without a dedicated entry
	"1": {"Delhi", "Haryana", "Punjab", "Chandigarh", "Himachal Pradesh", "Jammu and Kashmir", "Ladakh"},
	"2": {"Uttar Pradesh", "Uttarakhand"},
	"3": {"Rajasthan", "Gujarat", "Dadra and Nagar Haveli and Daman and Diu"},
	"4": {"Maharashtra", "Goa", "Madhya Pradesh", "Chhattisgarh"},
	"5": {"Telangana", "Andhra Pradesh", "Karnataka"},
	"6": {"Tamil Nadu", "Kerala", "Puducherry", "Lakshadweep"},
	"7": {"West Bengal", "Odisha", "Assam", "Sikkim", "Arunachal Pradesh", "Manipur", "Meghalaya", "Mizoram", "Nagaland", "Tripura", "Andaman and Nicobar Islands"},
	"8": {"Bihar", "Jharkhand"},
}

// IsWellFormed reports whether code is exactly six digits.
func IsWellFormed(code string) bool {
	return sixDigits.MatchString(code)
}

// StatesFor returns the states a well-formed PIN code may belong to,
// or nil when the prefix is unknown.
func StatesFor(code string) []string {
	if !IsWellFormed(code) {
		return nil
	}

	if states, ok := statesByPrefix[code[:2]]; ok {
		return states
	}
	return statesByPrefix[code[:1]]
}

// ValidateForState reports whether code is a six-digit PIN whose prefix
// set contains state. A prefix mismatch is a hard failure.
func ValidateForState(code, state string) bool {
	for _, s := range StatesFor(code) {
		if s == state {
			return true
		}
	}
	return false
}
