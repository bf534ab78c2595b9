package domain

import "strings"

// Platform identifies a judge / practice site.
type Platform string

const (
	PlatformLeetCode      Platform = "leetcode"
	PlatformCodeChef      Platform = "codechef"
	PlatformCodeforces    Platform = "codeforces"
	PlatformGeeksForGeeks Platform = "geeksforgeeks"
	PlatformHackerRank    Platform = "hackerrank"
	PlatformAtCoder       Platform = "atcoder"
	PlatformInterviewBit  Platform = "interviewbit"
	PlatformOther         Platform = "other"
)

var platformHosts = []struct {
	host     string
	platform Platform
}{
	{"leetcode.com", PlatformLeetCode},
	{"geeksforgeeks.org", PlatformGeeksForGeeks},
	{"codechef.com", PlatformCodeChef},
	{"codeforces.com", PlatformCodeforces},
	{"hackerrank.com", PlatformHackerRank},
	{"interviewbit.com", PlatformInterviewBit},
	{"atcoder.jp", PlatformAtCoder},
}

// DetectPlatform guesses the platform from a problem URL.
func DetectPlatform(link string) Platform {
	link = strings.ToLower(link)
	for _, ph := range platformHosts {
		if strings.Contains(link, ph.host) {
			return ph.platform
		}
	}
	return PlatformOther
}

// Language of a stored solution.
type Language string

const (
	LangCPP        Language = "cpp"
	LangJava       Language = "java"
	LangPython     Language = "python"
	LangJavaScript Language = "javascript"
	LangC          Language = "c"
	LangGo         Language = "go"
	LangRust       Language = "rust"
	LangOther      Language = "other"
)

func (l Language) Valid() bool {
	switch l {
	case LangCPP, LangJava, LangPython, LangJavaScript, LangC, LangGo, LangRust, LangOther:
		return true
	}
	return false
}
