package config

import (
	"regexp"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

var multipleBlankLines = regexp.MustCompile(`\n{3,}`)
var blankLineAfterOpenBrace = regexp.MustCompile(`\{\n\s*\n`)
var blankLineBeforeCloseBrace = regexp.MustCompile(`\n\s*\n(\s*\})`)

// Render returns cfg as canonical HCL, with every attribute spelled out.
func Render(cfg Config) []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	body.SetAttributeValue("static_vocabulary", cty.BoolVal(cfg.StaticVocabulary))
	body.SetAttributeValue("skip_dirs", stringList(cfg.SkipDirs))
	body.SetAttributeValue("extensions", stringList(cfg.Extensions))
	body.SetAttributeValue("ignore", stringList(cfg.Ignore))
	body.SetAttributeValue("scan_workers", cty.NumberIntVal(int64(cfg.ScanWorkers)))
	body.SetAttributeValue("watch", cty.StringVal(cfg.Watch))
	return hclwrite.Format(f.Bytes())
}

// Format takes HCL source and returns it in canonical style. It works on
// partial or invalid input, so it never rejects a file the user is still
// editing.
func Format(content string) string {
	formatted := string(hclwrite.Format([]byte(content)))
	formatted = multipleBlankLines.ReplaceAllString(formatted, "\n\n")
	formatted = blankLineAfterOpenBrace.ReplaceAllString(formatted, "{\n")
	return blankLineBeforeCloseBrace.ReplaceAllString(formatted, "\n${1}")
}
