package scanfmt

import "golang.org/x/text/language"

// Numeric punctuation and boolean spellings per supported locale. ForTag
// matches arbitrary tags against this set, so "de-AT" resolves to the
// "de" entry and unknown tags fall back to the first (English) entry.
//
// Boolean spellings stay "true"/"false" everywhere, matching the usual
// host numpunct convention; Custom covers locales configured with other
// boolalpha names.
type numpunct struct {
	decimal   rune
	group     rune
	trueName  string
	falseName string
}

var localeTags = []language.Tag{
	language.English,
	language.AmericanEnglish,
	language.BritishEnglish,
	language.German,
	language.French,
	language.Spanish,
	language.Italian,
	language.Portuguese,
	language.Dutch,
	language.Finnish,
	language.Swedish,
	language.Polish,
	language.Czech,
	language.Russian,
	language.Turkish,
	language.Japanese,
	language.Chinese,
	language.Korean,
}

var localeData = []numpunct{
	{'.', ',', "true", "false"},        // en
	{'.', ',', "true", "false"},        // en-US
	{'.', ',', "true", "false"},        // en-GB
	{',', '.', "true", "false"},        // de
	{',', ' ', "true", "false"},   // fr
	{',', '.', "true", "false"},        // es
	{',', '.', "true", "false"},        // it
	{',', '.', "true", "false"},        // pt
	{',', '.', "true", "false"},        // nl
	{',', ' ', "true", "false"},   // fi
	{',', ' ', "true", "false"},   // sv
	{',', ' ', "true", "false"},   // pl
	{',', ' ', "true", "false"},   // cs
	{',', ' ', "true", "false"},   // ru
	{',', '.', "true", "false"},        // tr
	{'.', ',', "true", "false"},        // ja
	{'.', ',', "true", "false"},        // zh
	{'.', ',', "true", "false"},        // ko
}

var localeMatcher = language.NewMatcher(localeTags)
