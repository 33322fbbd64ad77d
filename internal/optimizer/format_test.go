package optimizer

import "testing"

func TestParseOutputFormat(t *testing.T) {
	cases := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"webp", FormatWebP, false},
		{"png", FormatPNG, false},
		{"jpg", FormatJPEG, false},
		{"jpeg", FormatJPEG, false},
		{"JPG", FormatJPEG, false},
		{"WebP", FormatWebP, false},
		{"gif", FormatKeep, true},
		{"tiff", FormatKeep, true},
		{"", FormatKeep, true},
	}

	for _, tc := range cases {
		got, err := ParseOutputFormat(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseOutputFormat(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseOutputFormat(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseOutputFormat(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

// The jpg alias must behave identically to jpeg at every decision point:
// requested output format and detected source format alike.
func TestJPGAliasLaw(t *testing.T) {
	short, err := ParseOutputFormat("jpg")
	if err != nil {
		t.Fatalf("parse jpg: %v", err)
	}
	long, err := ParseOutputFormat("jpeg")
	if err != nil {
		t.Fatalf("parse jpeg: %v", err)
	}
	if short != long {
		t.Fatalf("jpg parsed as %v, jpeg as %v", short, long)
	}

	if formatFromName("jpg") != formatFromName("jpeg") {
		t.Fatal("detected-format alias mismatch")
	}
	if formatFromName("jpg") != FormatJPEG {
		t.Fatalf("formatFromName(jpg) = %v", formatFromName("jpg"))
	}
}

func TestIsCandidate(t *testing.T) {
	yes := []string{"a.png", "b.jpg", "c.jpeg", "d.webp", "photo.JPG", "sub/dir/e.PnG"}
	no := []string{"a.gif", "b.tiff", "README", "notes.txt", "archive.png.zip", "png"}

	for _, name := range yes {
		if !IsCandidate(name) {
			t.Errorf("IsCandidate(%q) = false, want true", name)
		}
	}
	for _, name := range no {
		if IsCandidate(name) {
			t.Errorf("IsCandidate(%q) = true, want false", name)
		}
	}
}
