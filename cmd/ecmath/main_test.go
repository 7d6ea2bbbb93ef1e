// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetContext()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"check"}, "ok"},
		{[]string{"pubkey", "5000", "--compressed=false"},
			"04ffe558e388852f0120e46af2d1b370f85854a8eb0841811ece0e3e03d282d57c315dc72890a4f10a1481c031b03b351b0dc79901ca18a00cf009dbdb157a1d10"},
		{[]string{"pubkey", "5000"},
			"02ffe558e388852f0120e46af2d1b370f85854a8eb0841811ece0e3e03d282d57c"},
		{[]string{"address", "5000"}, "15A8MkDwDQg7BnD6iqMFeeSAM3VVu1kYZb"},
		{[]string{"wif", "5003", "--testnet"}, "cMahea7zqjxrtgAbB7LSGbcQUr1uX1ojuat9jZodMN8rFTv2sfUK"},
		{[]string{"wif", "0x54321deadbeef"}, "KwDiBf89QgGbjEhKnhXJuH7LrciVrZi3qYjgiuQJv1h8Ytr2S53a"},
		{[]string{"parsewif", "KwDiBf89QgGbjEhKnhXJuH7LrciVrZi3qYjgiuQJv1h8Ytr2S53a"},
			"address=1HtX9w9pPWW7LjRTZdPhqD52FPaXzfcm66 compressed=true testnet=false"},
		{[]string{"sign", "12345", "hello"},
			"3045022100bf3d7a0fa4fdaa9e644506144a4bcc70d851d2fd8615f78ccca551fbf0dfe582022014c77eef0161323bb3890f1f4d03da4e68ba1a06583a1bd48da34837eb5b2972"},
		{[]string{"verify",
			"03f01d6b9018ab421dd410404cb869072065522bf85734008f105cf385a023a80f",
			"hello",
			"3045022100bf3d7a0fa4fdaa9e644506144a4bcc70d851d2fd8615f78ccca551fbf0dfe582022014c77eef0161323bb3890f1f4d03da4e68ba1a06583a1bd48da34837eb5b2972"},
			"valid"},
		{[]string{"derive", "000102030405060708090a0b0c0d0e0f", "m/0h"},
			"xprv9uHRZZhk6KAJC1avXpDAp4MDc3sQKNxDiPvvkX8Br5ngLNv1TxvUxt4cV1rGL5hj6KCesnDYUhd7oWgT11eZG7XnxHrnYeSvkzY7d2bhkJ7\n" +
				"xpub68Gmy5EdvgibQVfPdqkBBCHxA5htiqg55crXYuXoQRKfDBFA1WEjWgP6LHhwBZeNK1VTsfTFUHCdrfp1bgwQ9xv5ski8PX9rL2dZXvgGDnw"},
	}

	for i, test := range tests {
		got, err := run(t, test.args...)
		require.NoError(t, err, "#%d %v", i, test.args)
		require.Equal(t, test.want, got, "#%d %v", i, test.args)
	}
}

func TestCommandErrors(t *testing.T) {
	tests := [][]string{
		{"pubkey", "0"},
		{"pubkey", "notanumber"},
		{"parsewif", "KwDiBf89QgGbjEhKnhXJuH7LrciVrZi3qYjgiuQJv1h8Ytr2S53b"},
		{"verify",
			"03f01d6b9018ab421dd410404cb869072065522bf85734008f105cf385a023a80f",
			"goodbye",
			"3045022100bf3d7a0fa4fdaa9e644506144a4bcc70d851d2fd8615f78ccca551fbf0dfe582022014c77eef0161323bb3890f1f4d03da4e68ba1a06583a1bd48da34837eb5b2972"},
		{"verify", "zz", "hello", "3006020101020102"},
		{"derive", "0001", "m/0"},
		{"derive", "000102030405060708090a0b0c0d0e0f", "0/1"},
	}
	for i, args := range tests {
		_, err := run(t, args...)
		require.Error(t, err, "#%d %v", i, args)
	}
}

func TestParsePath(t *testing.T) {
	path, err := parsePath("m/0h/1/2'/3H")
	require.NoError(t, err)
	require.Equal(t, []uint32{0x80000000, 1, 0x80000002, 0x80000003}, path)

	path, err = parsePath("m")
	require.NoError(t, err)
	require.Empty(t, path)

	_, err = parsePath("m/x")
	require.Error(t, err)
	_, err = parsePath("m/2147483648")
	require.Error(t, err)
}
