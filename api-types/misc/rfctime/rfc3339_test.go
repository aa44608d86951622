package rfctime_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/torii-ml/torii-api-types/misc/rfctime"
)

func TestRFC3339(t *testing.T) {
	t.Run("it should fail to parse when passed wrong format", func(t *testing.T) {
		s := "2021/10/22 12:34:56 +07:00"
		_, err := rfctime.ParseRFC3339DateTime(s)

		if err == nil {
			t.Error("no error unexpectedly")
		}
	})

	t.Run("it should parse when passed rfc3339 date-time format", func(t *testing.T) {
		s := "2021-10-22T12:34:56.987654321+07:00"
		testee, err := rfctime.ParseRFC3339DateTime(s)
		if err != nil {
			t.Fatal(err)
		}

		expected := time.Date(
			2021, 10, 22, 12, 34, 56, 987654321,
			time.FixedZone("+07:00", int((7*time.Hour).Seconds())),
		)

		if !testee.Time().Equal(expected) {
			t.Errorf("unmatch: as time: (actual, expected) = (%+v, %+v)", testee, expected)
		}

		if !testee.Equal(rfctime.New(expected)) {
			t.Errorf("unmatch: as RFC3339: (actual, expected) = (%+v, %+v)", testee, expected)
		}
	})

	t.Run("it can be marshalled into json", func(t *testing.T) {
		s := "2021-10-22T12:34:56+07:00"
		testee, err := rfctime.ParseRFC3339DateTime(s)
		if err != nil {
			t.Fatal(err)
		}

		b, err := json.Marshal(testee)
		if err != nil {
			t.Fatal(err)
		}

		expected := `"2021-10-22T12:34:56+07:00"`
		if string(b) != expected {
			t.Errorf("unmatch: (actual, expected) = (%s, %s)", string(b), expected)
		}
	})

	t.Run("it can be unmarshalled from json", func(t *testing.T) {
		b := []byte(`"2021-10-22T12:34:56.987+07:00"`)
		testee := new(rfctime.RFC3339)
		if err := json.Unmarshal(b, testee); err != nil {
			t.Fatal(err)
		}

		expected := time.Date(
			2021, 10, 22, 12, 34, 56, 987000000,
			time.FixedZone("+07:00", int((7*time.Hour).Seconds())),
		)

		if !testee.Time().Equal(expected) {
			t.Errorf("unmatch: (actual, expected) = (%+v, %+v)", testee, expected)
		}
	})

	t.Run("it keeps null as zero value", func(t *testing.T) {
		testee := new(rfctime.RFC3339)
		if err := json.Unmarshal([]byte("null"), testee); err != nil {
			t.Fatal(err)
		}
		if !testee.Time().IsZero() {
			t.Errorf("not zero: %+v", testee)
		}
	})
}
