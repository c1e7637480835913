// Package version parses and increments numeric prerelease counters in
// version strings such as "1.2.3-beta007".
//
// A version string matches when it starts with major.minor.patch, a hyphen,
// a label that contains neither '+' nor digits, and a run of digits:
//
//	1.2.3-beta007          start "1.2.3-beta", prerelease "007"
//	1.2.3-rc.5             start "1.2.3-rc.",  prerelease "5"
//	1.2.3-rc001+build.5    start "1.2.3-rc",   prerelease "001" (suffix ignored)
//
// Incrementing keeps the counter's width as a minimum:
//
//	next, ok := version.Next("1.2.3-rc009") // "1.2.3-rc010", true
//	next, ok  = version.Next("1.2.3-rc999") // "1.2.3-rc1000", true
//	_, ok     = version.Next("1.2.3")       // "", false
package version
