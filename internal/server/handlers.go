package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/alnah/go-md2word"
	"github.com/alnah/go-md2word/internal/docmodel"
)

// DocxContentType is the media type of .docx downloads.
const DocxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// styleRequest mirrors md2word.Style in JSON bodies.
type styleRequest struct {
	FontFamily string `json:"fontFamily"`
	FontSize   string `json:"fontSize"`
	LineHeight string `json:"lineHeight"`
	Align      string `json:"align"`
	Regional   bool   `json:"regional"`
}

// convertRequest is the body of every POST endpoint.
type convertRequest struct {
	Markdown string        `json:"markdown"`
	Title    string        `json:"title"`
	Style    *styleRequest `json:"style"`
}

type htmlResponse struct {
	HTML string `json:"html"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// pageData feeds the preview page template.
type pageData struct {
	Title         string
	DocumentTitle string
	FontFamilies  []string
	FontSizes     []string
	LineHeights   []string
	Aligns        []string
	Style         md2word.Style
}

func (s *Server) handlePage(w http.ResponseWriter, _ *http.Request) {
	style := s.opts.Style.Resolved()
	style.FontFamily = docmodel.PrimaryFamily(style.FontFamily)

	title := s.opts.Title
	if title == "" {
		title = md2word.DefaultTitle
	}

	var buf bytes.Buffer
	err := s.page.Execute(&buf, pageData{
		Title:         "md2word",
		DocumentTitle: title,
		FontFamilies:  md2word.FontFamilies,
		FontSizes:     md2word.FontSizes,
		LineHeights:   md2word.LineHeights,
		Aligns:        md2word.Alignments,
		Style:         style,
	})
	if err != nil {
		s.log.WithError(err).Error("rendering preview page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}

	if html, hit := s.cache.get(req.Markdown); hit {
		writeJSON(w, http.StatusOK, htmlResponse{HTML: html})
		return
	}

	html := s.renderer.Preview(r.Context(), req.Markdown)
	if html != md2word.PreviewErrorPlaceholder {
		s.cache.set(req.Markdown, html)
	}
	writeJSON(w, http.StatusOK, htmlResponse{HTML: html})
}

func (s *Server) handleClipboard(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}

	html, err := s.renderer.ClipboardHTML(r.Context(), s.input(req))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, htmlResponse{HTML: html})
}

func (s *Server) handleDocx(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}

	result, err := s.renderer.Convert(r.Context(), s.input(req))
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", DocxContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": result.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.DOCX)))
	_, _ = w.Write(result.DOCX)
}

// decode reads a JSON body capped at MaxBodySize. It writes the error
// response itself and reports whether the handler should continue.
func (s *Server) decode(w http.ResponseWriter, r *http.Request) (convertRequest, bool) {
	var req convertRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "request body too large"})
			return req, false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return req, false
	}
	return req, true
}

// input converts a request into library input, applying the server defaults.
func (s *Server) input(req convertRequest) md2word.Input {
	in := md2word.Input{
		Markdown: req.Markdown,
		Title:    req.Title,
		Style:    s.opts.Style,
	}
	if in.Title == "" {
		in.Title = s.opts.Title
	}
	if req.Style != nil {
		in.Style = md2word.Style{
			FontFamily: req.Style.FontFamily,
			FontSize:   req.Style.FontSize,
			LineHeight: req.Style.LineHeight,
			Align:      req.Style.Align,
			Regional:   req.Style.Regional,
		}
	}
	return in
}

// writeError maps library errors to status codes.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, md2word.ErrEmptyMarkdown), errors.Is(err, md2word.ErrInvalidStyle):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		s.log.WithError(err).Error("conversion failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "conversion failed"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
