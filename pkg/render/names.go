package render

import "strings"

// compoundServers are server names that themselves contain a dash.
var compoundServers = []string{"google-cloud", "yahoo-finance", "pdf-tools"}

// nameRule decodes a dash-delimited call name into server and function parts.
type nameRule struct {
	name  string
	match func(callName string) bool
	split func(callName string, tokens []string) (server, function string)
}

// callNameRules are tried in order; the last rule always matches.
var callNameRules = []nameRule{
	{
		name:  "local",
		match: func(n string) bool { return strings.HasPrefix(n, "local") },
		split: func(_ string, tokens []string) (string, string) {
			return strings.Join(tokens[1:], ""), ""
		},
	},
	{
		name:  "compound",
		match: func(n string) bool { return compoundPrefix(n) != "" },
		split: func(n string, tokens []string) (string, string) {
			function := ""
			if len(tokens) > 2 {
				function = strings.Join(tokens[2:], "")
			}
			return compoundPrefix(n), function
		},
	},
	{
		name:  "server-function",
		match: func(string) bool { return true },
		split: func(_ string, tokens []string) (string, string) {
			return tokens[0], strings.Join(tokens[1:], "-")
		},
	},
}

func compoundPrefix(name string) string {
	for _, prefix := range compoundServers {
		if strings.HasPrefix(name, prefix) {
			return prefix
		}
	}
	return ""
}

// SplitCallName decodes a call name such as "github-search_issues" into its
// server ("github") and function ("search_issues") parts.
func SplitCallName(name string) (server, function string) {
	tokens := strings.Split(name, "-")
	for _, rule := range callNameRules {
		if rule.match(name) {
			return rule.split(name, tokens)
		}
	}
	return name, ""
}
