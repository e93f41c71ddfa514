package web

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/justestif/go-mindful-moments/internal/emotion"
	"github.com/justestif/go-mindful-moments/internal/music"
	"github.com/justestif/go-mindful-moments/internal/session"
)

// Classifier classifies free text into a raw label/score pair.
type Classifier interface {
	Classify(ctx context.Context, text string) (*emotion.Classification, error)
}

// TrackPicker returns a mood-matched track, or nil when none was found.
type TrackPicker interface {
	Pick(ctx context.Context, category emotion.Category) (*music.Track, error)
}

// historyLimit caps how many history entries are rendered.
const historyLimit = 5

// Handlers contains HTTP handlers for the web application.
type Handlers struct {
	classifier Classifier
	picker     TrackPicker
	sessions   *session.Store
	templates  *Templates
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(classifier Classifier, picker TrackPicker, sessions *session.Store, templates *Templates) *Handlers {
	return &Handlers{
		classifier: classifier,
		picker:     picker,
		sessions:   sessions,
		templates:  templates,
	}
}

// Home handles the home page (GET /).
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.GetOrCreate(w, r)

	data := HomePageData{
		PageData: PageData{
			Title: "Mindful Moments – AI Emotion Therapy",
		},
		History: historyItems(sess.History.Recent(historyLimit)),
	}

	if flash := sess.ConsumeFlash(); flash != nil {
		data.Flash = &FlashMessage{Type: flash.Type, Message: flash.Message}
	}

	if sess.Current != nil {
		data.Result = h.buildResult(r.Context(), *sess.Current)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.Render(w, "home", data); err != nil {
		log.Printf("rendering home: %v", err)
		http.Error(w, "Failed to render template", http.StatusInternalServerError)
	}
}

// Detect runs one classification for the submitted text (POST /detect).
// Failures are converted to the softest outcome that preserves partial
// results: a classifier failure keeps the page usable, and the emotion
// block always renders even when the music lookup fails later.
func (h *Handlers) Detect(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.GetOrCreate(w, r)

	text := strings.TrimSpace(r.FormValue("feelings"))
	if text == "" {
		sess.Flash = &session.Flash{Type: "warning", Message: "Please enter some text."}
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	raw, err := h.classifier.Classify(r.Context(), text)
	if err != nil {
		log.Printf("classifying text: %v", err)
		sess.Flash = &session.Flash{Type: "error", Message: "Emotion detection is unavailable right now. Please try again."}
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	detection, err := emotion.Normalize(text, raw)
	if err != nil {
		log.Printf("normalizing classification: %v", err)
		sess.Flash = &session.Flash{Type: "error", Message: "Emotion detection is unavailable right now. Please try again."}
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	category := detection.Category
	sess.Current = &category
	sess.History.Append(session.HistoryEntry{
		Time:     time.Now(),
		Category: detection.Category,
		Score:    detection.Score,
	})
	sess.Flash = &session.Flash{Type: "success", Message: "Emotion detected successfully!"}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// buildResult assembles the presentation block and its music section.
// Catalog failures degrade to a soft notice; an empty search result omits
// the music section entirely.
func (h *Handlers) buildResult(ctx context.Context, category emotion.Category) *ResultData {
	p := emotion.Present(category)
	result := &ResultData{
		Category: category.Title(),
		Color:    p.Color,
		Emoji:    p.Emoji,
		Message:  p.Message,
		Tip:      p.Tip,
	}

	track, err := h.picker.Pick(ctx, category)
	if err != nil {
		log.Printf("picking track: %v", err)
		result.MusicNotice = "Music is taking a break right now."
		return result
	}
	if track != nil {
		result.Track = &TrackData{
			Name:     track.Name,
			Artist:   track.Artist,
			EmbedURL: track.EmbedURL(),
		}
	}

	return result
}

// historyItems converts history entries into template view data.
func historyItems(entries []session.HistoryEntry) []HistoryItem {
	items := make([]HistoryItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, HistoryItem{
			Time:     e.Time,
			Category: e.Category.Title(),
			Score:    e.Score,
		})
	}
	return items
}
