package main

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	infos  []string
	errors []string
}

func (r *recordingLogger) Infof(format string, v ...any) {
	r.infos = append(r.infos, fmt.Sprintf(format, v...))
}

func (r *recordingLogger) Errorf(format string, v ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, v...))
}

func TestRun(t *testing.T) {
	var out strings.Builder
	logger := &recordingLogger{}

	code := run([]string{"-text", "cabc"}, &out, logger)
	require.Equal(t, 0, code)
	assert.Empty(t, logger.errors)
	assert.Equal(t, []string{"round trip of 4 bytes succeeded"}, logger.infos)

	expect := strings.Join([]string{
		"The size of the data is: 4\n",
		"The content of the data is: cabc\n",
		"The size of the encoded data is: 1\n",
		"The content of the encoded data is: 010110\n",
		"The size of the decoded data is: 4\n",
		"The content of the decoded data is: cabc\n",
	}, "")
	assert.Equal(t, expect, out.String())
}

func TestRun_Verbose(t *testing.T) {
	var out strings.Builder
	code := run([]string{"-v", "-text", "aaaa"}, &out, &recordingLogger{})
	require.Equal(t, 0, code)
	assert.Contains(t, out.String(), "\tEncode('a') = \"0\"\n")
	assert.Contains(t, out.String(), "The content of the encoded data is: 0000\n")
}

func TestRun_Default(t *testing.T) {
	var out strings.Builder
	code := run(nil, &out, &recordingLogger{})
	require.Equal(t, 0, code)
	assert.Contains(t, out.String(), "The content of the decoded data is: "+defaultText+"\n")
}

func TestRun_Empty(t *testing.T) {
	var out strings.Builder
	logger := &recordingLogger{}
	code := run([]string{"-text", ""}, &out, logger)
	assert.Equal(t, 1, code)
	require.Len(t, logger.errors, 1)
	assert.Contains(t, logger.errors[0], "invalid input")
}

func TestRun_BadFlag(t *testing.T) {
	var out strings.Builder
	assert.Equal(t, 2, run([]string{"-nope"}, &out, &recordingLogger{}))
}
