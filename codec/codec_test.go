package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type summaryFixture struct {
	RunID  string             `json:"run_id"`
	Words  int                `json:"words"`
	MAP    float64            `json:"map"`
	Params map[string]float64 `json:"params"`
	Labels []string           `json:"labels"`
}

func TestByName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		ok       bool
	}{
		{"json", "json", true},
		{"go-json", "go-json", true},
		{"", "go-json", true},
		{"msgpack", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := ByName(tt.name)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.expected, c.Name())
			}
		})
	}
}

func TestCodecs_Interoperate(t *testing.T) {
	in := summaryFixture{
		RunID:  "3f1c",
		Words:  2,
		MAP:    0.8333,
		Params: map[string]float64{"decay": 0.8, "threshold": 0.9},
		Labels: []string{"animal|动物", "pet|宠物"},
	}

	data := MustMarshal(GoJSON{}, in)

	var out summaryFixture
	require.NoError(t, JSON{}.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestGoJSON_MarshalIndent(t *testing.T) {
	b, err := GoJSON{}.MarshalIndent(map[string]int{"words": 3})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"words\": 3\n}", string(b))
}

func BenchmarkCodec_Marshal_Summary(b *testing.B) {
	payload := summaryFixture{
		RunID:  "3f1c",
		Words:  1000,
		MAP:    0.61,
		Params: map[string]float64{"decay": 0.8, "threshold": 0.9, "k": 100},
		Labels: []string{"a|甲", "b|乙", "c|丙"},
	}

	b.Run("stdlib", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			_ = MustMarshal(JSON{}, payload)
		}
	})
	b.Run("go-json", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			_ = MustMarshal(GoJSON{}, payload)
		}
	})
}
