package log

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testsuite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestWithFieldDoesNotLeak() {
	base := Log().WithField("a", 1)
	left := base.WithField("b", 2)
	right := base.WithField("c", 3)
	ts.Equal([]interface{}{"a", 1, "b", 2}, left.fields)
	ts.Equal([]interface{}{"a", 1, "c", 3}, right.fields)
}

func (ts *testsuite) TestInitRejectsUnknownLevel() {
	ts.Error(Init(Config{Level: "loud"}))
}

func (ts *testsuite) TestInitWithFile() {
	dir := ts.T().TempDir()
	ts.NoError(Init(Config{Level: "debug", File: filepath.Join(dir, "api.log"), MaxSizeMB: 1}))
	Log().WithFields(Fields{"k": "v"}).Info("hello")
}
