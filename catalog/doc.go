// Package catalog maps numeric placeholder codes to rendered fragments and
// substitutes them into text, line by line.
//
// Codes are strings of decimal digits. Numerals survive host pipelines that
// split ordinary words into separate spans, so a code printed anywhere in a
// post reaches the substituter intact.
//
// A catalog is an ordered list of items. A leaf item names a shape family,
// its layer count and optional continuation, replica and styling settings;
// a composite item lists parts rendered side by side. Catalogs come from
// Default or from a YAML/TOML file (Load), and are validated before use.
//
// Substituter performs a single pass per line: once a code is replaced, the
// inserted markup is never scanned again, and at any position the longest
// matching code wins.
package catalog
