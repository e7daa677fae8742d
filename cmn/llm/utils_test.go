package llm

import "testing"

func TestParseOutputFormatWithMarkdown(t *testing.T) {
	cases := []string{
		`{"summary":"ok","detailed_analysis":"a","lucky_numbers":["07"],"action_advice":"b"}`,
		"```json\n{\"summary\":\"ok\",\"detailed_analysis\":\"a\",\"lucky_numbers\":[\"07\"],\"action_advice\":\"b\"}\n```",
		"```\n{\"summary\":\"ok\",\"detailed_analysis\":\"a\",\"lucky_numbers\":[\"07\"],\"action_advice\":\"b\"}\n```",
	}

	for _, raw := range cases {
		var out DreamEnrichment
		if err := ParseOutputFormatWithMarkdown(raw, &out); err != nil {
			t.Fatalf("parse failed for %q: %v", raw, err)
		}
		if out.Summary != "ok" || len(out.LuckyNumbers) != 1 {
			t.Errorf("unexpected result %+v", out)
		}
	}
}

func TestParseOutputFormatWithMarkdownInvalid(t *testing.T) {
	var out FortuneEnrichment
	if err := ParseOutputFormatWithMarkdown("not json at all", &out); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLangInstruction(t *testing.T) {
	if got := langInstruction("unknown"); got != langInstruction("vn") {
		t.Errorf("unknown lang should fall back to vn instruction")
	}
	if langInstruction("kr") == langInstruction("en") {
		t.Errorf("kr and en instructions must differ")
	}
}
