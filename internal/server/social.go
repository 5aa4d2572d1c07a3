package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/gameshelf/internal/repositories"
)

// SocialHandler serves the friends and channel endpoints.
type SocialHandler struct {
	friends  *repositories.FriendRepository
	channels *repositories.ChannelRepository
	messages *repositories.MessageRepository
	logger   *log.Logger
}

// NewSocialHandler creates a SocialHandler.
func NewSocialHandler(friends *repositories.FriendRepository, channels *repositories.ChannelRepository, messages *repositories.MessageRepository, logger *log.Logger) *SocialHandler {
	return &SocialHandler{friends: friends, channels: channels, messages: messages, logger: logger}
}

// Register wires the social routes onto the router.
func (h *SocialHandler) Register(r Router) {
	r.Handle("GET, POST", "/friends/{username}", http.HandlerFunc(h.Friends))
	r.Handle(http.MethodPost, "/channels", http.HandlerFunc(h.CreateChannel))
	r.Handle(http.MethodGet, "/channels/{username}", http.HandlerFunc(h.ListChannels))
	r.Handle("GET, POST", "/channels/{id}/members", http.HandlerFunc(h.Members))
	r.Handle("GET, POST", "/channels/{id}/messages", http.HandlerFunc(h.Messages))
}

// Friends handles GET and POST /friends/{username}.
//
// POST adds a friend edge then falls through to return the updated list.
func (h *SocialHandler) Friends(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	if r.Method == http.MethodPost {
		var body struct {
			Friend string `json:"friend"`
		}
		if err := readJSON(r, &body); err != nil || body.Friend == "" {
			writeError(w, http.StatusBadRequest, "friend required")
			return
		}

		if err := h.friends.Add(username, body.Friend); err != nil {
			h.logger.Error("add friend failed", "username", username, "error", err)
			writeError(w, http.StatusInternalServerError, "failed")
			return
		}
	}

	rows, err := h.friends.List(username)
	if err != nil {
		h.logger.Error("list friends failed", "username", username, "error", err)
		writeError(w, http.StatusInternalServerError, "failed")
		return
	}

	writeJSON(w, http.StatusOK, rows)
}

// CreateChannel handles POST /channels.
//
// The creator is always a member even when omitted from the members list.
func (h *SocialHandler) CreateChannel(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name      string   `json:"name"`
		Members   []string `json:"members"`
		CreatedBy string   `json:"createdBy"`
	}
	if err := readJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "name required")
		return
	}

	name := strings.TrimSpace(body.Name)
	createdBy := strings.TrimSpace(body.CreatedBy)

	if name == "" {
		writeError(w, http.StatusBadRequest, "name required")
		return
	}
	if createdBy == "" {
		writeError(w, http.StatusBadRequest, "createdBy required")
		return
	}

	id, err := h.channels.Create(name, createdBy, body.Members)
	if err != nil {
		h.logger.Error("create channel failed", "name", name, "error", err)
		writeError(w, http.StatusInternalServerError, "failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"id": id, "name": name})
}

// ListChannels handles GET /channels/{username}, newest first.
func (h *SocialHandler) ListChannels(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	rows, err := h.channels.ForUser(username)
	if err != nil {
		h.logger.Error("list channels failed", "username", username, "error", err)
		writeError(w, http.StatusInternalServerError, "failed")
		return
	}

	writeJSON(w, http.StatusOK, rows)
}

// Members handles GET and POST /channels/{id}/members.
//
// POST is idempotent; re-adding an existing member is not an error.
func (h *SocialHandler) Members(w http.ResponseWriter, r *http.Request) {
	channelID, ok := h.channelID(w, r)
	if !ok {
		return
	}

	if r.Method == http.MethodPost {
		var body struct {
			Username string `json:"username"`
		}
		if err := readJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "username required")
			return
		}

		username := strings.TrimSpace(body.Username)
		if username == "" {
			writeError(w, http.StatusBadRequest, "username required")
			return
		}

		if err := h.channels.AddMember(channelID, username); err != nil {
			h.logger.Error("add member failed", "channel", channelID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed")
			return
		}
	}

	rows, err := h.channels.Members(channelID)
	if err != nil {
		h.logger.Error("list members failed", "channel", channelID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed")
		return
	}

	writeJSON(w, http.StatusOK, rows)
}

// Messages handles GET and POST /channels/{id}/messages.
//
// GET with a numeric sinceId returns only newer messages in ascending order,
// for incremental polling. Without it the latest 50 are returned, also
// ascending.
func (h *SocialHandler) Messages(w http.ResponseWriter, r *http.Request) {
	channelID, ok := h.channelID(w, r)
	if !ok {
		return
	}

	if r.Method == http.MethodPost {
		var body struct {
			Sender string `json:"sender"`
			Text   string `json:"text"`
		}
		if err := readJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "sender and text required")
			return
		}

		sender := strings.TrimSpace(body.Sender)
		text := strings.TrimSpace(body.Text)
		if sender == "" || text == "" {
			writeError(w, http.StatusBadRequest, "sender and text required")
			return
		}

		if err := h.messages.Insert(channelID, sender, text); err != nil {
			h.logger.Error("insert message failed", "channel", channelID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed")
			return
		}
	}

	if sinceID, err := strconv.ParseInt(r.URL.Query().Get("sinceId"), 10, 64); err == nil {
		msgs, err := h.messages.Since(channelID, sinceID)
		if err != nil {
			h.logger.Error("poll messages failed", "channel", channelID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed")
			return
		}
		writeJSON(w, http.StatusOK, msgs)
		return
	}

	msgs, err := h.messages.Latest(channelID)
	if err != nil {
		h.logger.Error("list messages failed", "channel", channelID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed")
		return
	}

	writeJSON(w, http.StatusOK, msgs)
}

// channelID parses the {id} path segment, writing a 404 on garbage so
// non-numeric ids behave like unknown routes.
func (h *SocialHandler) channelID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return 0, false
	}
	return id, true
}
