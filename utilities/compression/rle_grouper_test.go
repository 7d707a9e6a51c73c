package compression_test

import (
	"io"
	"strings"
	"testing"

	c "github.com/dargueta/zplimage/utilities/compression"
	"github.com/stretchr/testify/assert"
)

type BasicTestCase struct {
	Data           string
	ExpectedResult c.Run
	Name           string
}

var basicTestCases = []BasicTestCase{
	{"", c.InvalidRun, "empty"},
	{"0010000", c.Run{Value: '0', Length: 2}, "two initial"},
	{"6f5a3", c.Run{Value: '6', Length: 1}, "one character"},
	{"999999", c.Run{Value: '9', Length: 6}, "entire run"},
}

func runBasicTestCase(t *testing.T, test BasicTestCase) {
	grouper := c.NewRunGrouper(strings.NewReader(test.Data))
	result, _ := grouper.GetNextRun()
	if result != test.ExpectedResult {
		t.Errorf("Expected %+v, got %+v", test.ExpectedResult, result)
	}
}

func TestRunGrouper__Basic(t *testing.T) {
	for _, test := range basicTestCases {
		t.Run(
			test.Name,
			func(t *testing.T) {
				runBasicTestCase(t, test)
			},
		)
	}
}

func TestRunGrouper__Sequence(t *testing.T) {
	data := "19444446601000"
	expected := []c.Run{
		{'1', 1, 0}, {'9', 1, 1}, {'4', 5, 2}, {'6', 2, 7}, {'0', 1, 9},
		{'1', 1, 10}, {'0', 3, 11}, c.InvalidRun,
	}

	grouper := c.NewRunGrouper(strings.NewReader(data))
	for i, expectedRun := range expected {
		result, err := grouper.GetNextRun()
		assert.Equalf(t, expectedRun, result, "run %d is wrong", i)
		if expectedRun == c.InvalidRun {
			assert.ErrorIs(t, err, io.EOF)
		}
	}
}
