package accent

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStoreAdd(t *testing.T) {
	t.Run("value duplicates collapse", func(t *testing.T) {
		s := NewStore()
		e := Entry{KatakanaReading: "タベル", PitchNumber: "2"}
		s.Add("食べる", e)
		s.Add("食べる", e)
		entries, ok := s.Lookup("食べる")
		if !ok || len(entries) != 1 {
			t.Errorf("Lookup() = %v, %v; want one entry", entries, ok)
		}
	})

	t.Run("empty word rejected", func(t *testing.T) {
		s := NewStore()
		s.Add("", Entry{KatakanaReading: "ア"})
		if s.Len() != 0 {
			t.Errorf("Len() = %d, want 0", s.Len())
		}
	})

	t.Run("insertion order preserved", func(t *testing.T) {
		s := NewStore()
		s.Add("雨", Entry{KatakanaReading: "アメ", PitchNumber: "1"})
		s.Add("雨", Entry{KatakanaReading: "アメ", PitchNumber: "0"})
		entries, _ := s.Lookup("雨")
		want := []Entry{
			{KatakanaReading: "アメ", PitchNumber: "1"},
			{KatakanaReading: "アメ", PitchNumber: "0"},
		}
		if diff := cmp.Diff(want, entries); diff != "" {
			t.Errorf("entries mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestAddReadingKeys(t *testing.T) {
	s := NewStore()
	s.Add("試す", Entry{KatakanaReading: "タメス", PitchNumber: "2"})
	s.AddReadingKeys()
	if !s.Contains("タメス") {
		t.Error("katakana reading should become an additional key")
	}
	entries, _ := s.Lookup("タメス")
	if len(entries) != 1 || entries[0].KatakanaReading != "タメス" {
		t.Errorf("entries under reading key = %v", entries)
	}
}

func TestRenderNotation(t *testing.T) {
	tests := []struct {
		name, reading, pitch, want string
	}{
		{
			name: "heiban", reading: "ハナ", pitch: "0",
			want: `ハ<span class="pitch_high">ナ</span>`,
		},
		{
			name: "atamadaka", reading: "アメ", pitch: "1",
			want: `<span class="pitch_high_drop">ア</span>メ`,
		},
		{
			name: "nakadaka", reading: "タベル", pitch: "2",
			want: `タ<span class="pitch_high_drop">ベ</span>ル`,
		},
		{
			name: "long high run", reading: "イモウト", pitch: "4",
			want: `イ<span class="pitch_high">モウ</span><span class="pitch_high_drop">ト</span>`,
		},
		{
			name: "small kana shares mora", reading: "キョウ", pitch: "1",
			want: `<span class="pitch_high_drop">キョ</span>ウ`,
		},
		{
			name: "garbage pitch number", reading: "アメ", pitch: "x",
			want: "アメ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderNotation(tt.reading, tt.pitch); got != tt.want {
				t.Errorf("RenderNotation(%q, %q) = %q, want %q", tt.reading, tt.pitch, got, tt.want)
			}
		})
	}
}

const sampleTSV = `# headword	reading	pitch
食べる	タベル	2
雨	アメ	1
雨	アメ	1
テスト	テスト	1
`

func TestLoadTSV(t *testing.T) {
	store, err := LoadTSV(strings.NewReader(sampleTSV))
	if err != nil {
		t.Fatalf("LoadTSV() error = %v", err)
	}
	if store.Len() != 3 {
		t.Errorf("Len() = %d, want 3", store.Len())
	}
	entries, ok := store.Lookup("雨")
	if !ok || len(entries) != 1 {
		t.Fatalf("duplicate line should collapse, got %v", entries)
	}
	if entries[0].HTMLNotation != `<span class="pitch_high_drop">ア</span>メ` {
		t.Errorf("HTMLNotation = %q", entries[0].HTMLNotation)
	}

	t.Run("short line fails", func(t *testing.T) {
		if _, err := LoadTSV(strings.NewReader("食べる\tタベル\n")); err == nil {
			t.Error("LoadTSV() error = nil, want an error")
		}
	})
}

func TestGobRoundTrip(t *testing.T) {
	store, err := LoadTSV(strings.NewReader(sampleTSV))
	if err != nil {
		t.Fatalf("LoadTSV() error = %v", err)
	}
	var buf bytes.Buffer
	if err := store.SaveGob(&buf); err != nil {
		t.Fatalf("SaveGob() error = %v", err)
	}
	if !looksBinary(buf.Bytes()[:min(512, buf.Len())]) {
		t.Error("gob payload should sniff as binary")
	}
	loaded, err := LoadGob(&buf)
	if err != nil {
		t.Fatalf("LoadGob() error = %v", err)
	}
	if diff := cmp.Diff(store.entries, loaded.entries); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
