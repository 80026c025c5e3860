package envpath

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeedsAppend(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		current string
		want    bool
	}{
		{
			name:    "absent value",
			target:  `C:\App`,
			current: "",
			want:    true,
		},
		{
			name:    "already present",
			target:  `C:\App`,
			current: `C:\Windows;C:\App;D:\X`,
			want:    false,
		},
		{
			name:    "prefix of existing segment is not a match",
			target:  `C:\Foo`,
			current: `C:\FooBar;C:\Other`,
			want:    true,
		},
		{
			name:    "suffix of existing segment is not a match",
			target:  `Bar`,
			current: `C:\FooBar;C:\Other`,
			want:    true,
		},
		{
			name:    "case insensitive match",
			target:  `c:\app`,
			current: `C:\APP;D:\X`,
			want:    false,
		},
		{
			name:    "single segment equal to target, no delimiters",
			target:  `C:\App`,
			current: `C:\App`,
			want:    false,
		},
		{
			name:    "present as first segment",
			target:  `C:\App`,
			current: `C:\App;D:\X`,
			want:    false,
		},
		{
			name:    "present as last segment",
			target:  `C:\App`,
			current: `D:\X;C:\App`,
			want:    false,
		},
		{
			name:    "missing entirely",
			target:  `C:\App`,
			current: `C:\Windows;D:\X`,
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NeedsAppend(tt.target, tt.current))
		})
	}
}

func TestAppend(t *testing.T) {
	assert.Equal(t, "A;B;C", Append("A;B", "C"))
	assert.Equal(t, "C", Append("", "C"))
	assert.Equal(t, `C:\App`, Append("", `C:\App`))
}

func TestRemoveSegment(t *testing.T) {
	tests := []struct {
		name    string
		current string
		target  string
		want    string
	}{
		{"middle", "A;B;C", "B", "A;C"},
		{"first", "A;B;C", "a", "B;C"},
		{"last", "A;B;C", "C", "A;B"},
		{"only segment", "A", "A", ""},
		{"absent", "A;B", "C", "A;B"},
		{"duplicated segments", "A;B;A", "A", "B"},
		{"empty value", "", "A", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RemoveSegment(tt.current, tt.target))
		})
	}
}

// Re-running the decision after an append must always report the segment as
// present, however many times the pair is applied.
func TestAppendThenNeedsAppendIsIdempotent(t *testing.T) {
	current := `C:\Windows;C:\Windows\System32`
	target := `C:\Program Files\Zov`

	for i := 0; i < 5; i++ {
		if NeedsAppend(target, current) {
			current = Append(current, target)
		}
	}

	assert.Equal(t, 1, strings.Count(strings.ToUpper(current), strings.ToUpper(target)))
	assert.False(t, NeedsAppend(target, current))
}
