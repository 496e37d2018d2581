package naming

import (
	"path/filepath"
	"testing"
)

func TestModelToken(t *testing.T) {
	tests := []struct {
		model string
		want  string
	}{
		{"anthropic/claude-sonnet-4.5", "anthropic_claude_sonnet_4_5"},
		{"vendor/model-x", "vendor_model_x"},
		{"openai/gpt-4o", "openai_gpt_4o"},
		{"Google/Gemini-2.5-Pro", "google_gemini_2_5_pro"},
		{"meta-llama/llama-3.3-70b-instruct", "meta_llama_llama_3_3_70b_instruct"},
		{"qwen/qwen2.5-vl-72b:free", "qwen_qwen2_5_vl_72bfree"},
		{"  spaced  name  ", "spaced_name"},
	}

	for _, tt := range tests {
		if got := ModelToken(tt.model); got != tt.want {
			t.Errorf("ModelToken(%q) = %q, want %q", tt.model, got, tt.want)
		}
	}
}

func TestModelToken_Deterministic(t *testing.T) {
	model := "anthropic/claude-sonnet-4.5"
	first := ModelToken(model)
	for i := 0; i < 10; i++ {
		if got := ModelToken(model); got != first {
			t.Fatalf("ModelToken not deterministic: %q vs %q", got, first)
		}
	}
}

func TestModelToken_ProviderPrefixPreventsCollision(t *testing.T) {
	a := ModelToken("openai/gpt-4o")
	b := ModelToken("azure/gpt-4o")
	if a == b {
		t.Errorf("tokens collide for different providers: %q", a)
	}
}

func TestModelLabel(t *testing.T) {
	tests := []struct {
		model string
		want  string
	}{
		{"vendor/model-x", "Vendor Model X"},
		{"anthropic/claude-sonnet", "Anthropic Claude Sonnet"},
		{"meta_llama/llama", "Meta Llama Llama"},
	}

	for _, tt := range tests {
		if got := ModelLabel(tt.model); got != tt.want {
			t.Errorf("ModelLabel(%q) = %q, want %q", tt.model, got, tt.want)
		}
	}
}

func TestAppDir(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Microsoft Word", "microsoft_word"},
		{"VS Code", "vs_code"},
		{"Jira", "jira"},
		{"Google Sheets", "google_sheets"},
	}

	for _, tt := range tests {
		if got := AppDir(tt.name); got != tt.want {
			t.Errorf("AppDir(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestArtifactAndScreenshotPathsMirror(t *testing.T) {
	artifact := ArtifactPath("outputs", "Jira", "vendor/model-x")
	screenshot := ScreenshotPath("outputs", "Jira", "vendor/model-x")

	wantArtifact := filepath.Join("outputs", "jira", "vendor_model_x.html")
	if artifact != wantArtifact {
		t.Errorf("ArtifactPath = %q, want %q", artifact, wantArtifact)
	}

	wantScreenshot := filepath.Join("outputs", "jira", "vendor_model_x.png")
	if screenshot != wantScreenshot {
		t.Errorf("ScreenshotPath = %q, want %q", screenshot, wantScreenshot)
	}
}
