// Package main provides the entry point for the exreport CLI.
//
// exreport renders declarative YAML report definitions to styled .xlsx
// workbooks and reads generated workbooks back.
//
// Usage:
//
//	exreport build pricing cyber-essentials -o out/
//	exreport inspect out/pricing-analysis.xlsx --markdown
//
// See --help for all available options.
package main

func main() {
	Execute()
}
