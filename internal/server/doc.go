// Package server provides the local preview server of md2word.
//
// The server renders an editing page with a live preview, and exposes
// JSON endpoints that return preview HTML, clipboard HTML, and .docx
// downloads:
//
//	GET  /              editing page
//	GET  /healthz       liveness check
//	POST /api/preview   {"markdown"} -> {"html"}
//	POST /api/clipboard {"markdown", "style"} -> {"html"}
//	POST /api/docx      {"markdown", "title", "style"} -> attachment
package server
