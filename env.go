package u8tbl

import "os"

// EnvStyle is the environment variable consulted by StyleFromEnv.
const EnvStyle = "TABLE_FORMAT"

// StyleFromEnv returns the style named by $TABLE_FORMAT, or def when the
// variable is unset, empty or names no known style.
func StyleFromEnv(def Style) Style {
	s, ok := lookupEnvStyle(os.LookupEnv)
	if !ok {
		return def
	}
	return s
}

// LookupEnvStyle reports the style named by $TABLE_FORMAT and whether it
// named a known style.
func LookupEnvStyle() (Style, bool) {
	return lookupEnvStyle(os.LookupEnv)
}

func lookupEnvStyle(lookup func(string) (string, bool)) (Style, bool) {
	v, ok := lookup(EnvStyle)
	if !ok || v == "" {
		return "", false
	}
	s, err := ParseStyle(v)
	if err != nil {
		return "", false
	}
	return s, true
}
