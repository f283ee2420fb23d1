package queryfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueIsActive(t *testing.T) {
	tests := []struct {
		name   string
		value  Value
		active bool
	}{
		{"null", Null(), false},
		{"empty string", String(""), false},
		{"string", String("wuling"), true},
		{"empty list", List(), false},
		{"list", List("1", "2"), true},
		{"zero number", Number(0), true},
		{"false bool", Bool(false), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.active, tc.value.IsActive())
		})
	}
}

func TestValueEncode(t *testing.T) {
	assert.Equal(t, "a,b,c", List("a", "b", "c").Encode())
	assert.Equal(t, "1", Bool(true).Encode())
	assert.Equal(t, "0", Bool(false).Encode())
	assert.Equal(t, "3", Number(3).Encode())
	assert.Equal(t, "2.5", Number(2.5).Encode())
	assert.Equal(t, "title", String("title").Encode())
}

func TestParseValue(t *testing.T) {
	assert.Equal(t, []string{"1", "2"}, parseValue(KindList, "1,2").Items())
	assert.True(t, parseValue(KindBool, "true").Bool())
	assert.True(t, parseValue(KindBool, "1").Bool())
	assert.False(t, parseValue(KindBool, "yes").Bool())
	assert.Equal(t, 7.0, parseValue(KindNumber, "7").Num())
	assert.True(t, parseValue(KindNumber, "not-a-number").IsNull())
	assert.Equal(t, "draft", parseValue(KindString, "draft").Str())
}

func TestItemsReturnsCopy(t *testing.T) {
	v := List("a", "b")
	items := v.Items()
	items[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, v.Items())
}
