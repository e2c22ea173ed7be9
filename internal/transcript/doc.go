// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package transcript projects conversation messages into render-ready
// view models: parsed markup spans, agent badges, source summaries, and
// debug panel payloads.
//
// Everything here is a pure function. Same input, same output; the
// view layer applies styling and the projector never touches state.
package transcript
