//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package version reports the engine's build identity. The values below are
// meant to be overwritten at build time via
//   -ldflags "-X github.com/frankkopp/corvid/internal/version.gitCommit=... -X .../version.buildTime=..."
// When built without ldflags (e.g. "go run" during development) they fall
// back to placeholders.
package version

// these are set via -ldflags at build time
var (
	major     = "1"
	minor     = "0"
	patch     = "0"
	gitCommit = "unknown"
	buildTime = "unknown"
)

// Version returns a human readable version string including the git
// commit and build time when available.
func Version() string {
	v := major + "." + minor + "." + patch
	if gitCommit != "unknown" {
		v += " (" + gitCommit + ")"
	}
	if buildTime != "unknown" {
		v += " built " + buildTime
	}
	return v
}
