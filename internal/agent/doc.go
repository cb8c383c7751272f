package agent

// Package agent defines the retrieval backend contract and its two
// implementations: one fetches posts through Instagram's web API and plain
// HTTP, the other drives the yt-dlp executable via go-ytdlp. Both produce the
// same per-item artifact layout and are interchangeable for fallback.
