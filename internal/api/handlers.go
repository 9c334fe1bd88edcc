package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"marketloop/internal/core"
)

func (s *Server) routes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/feed", s.listFeed)
		r.Route("/posts/{id}", func(r chi.Router) {
			r.Get("/", s.getPost)
			r.Post("/like", s.likePost)
			r.Post("/unlike", s.unlikePost)
			r.Get("/comments", s.listComments)
			r.Post("/comments", s.addComment)
		})

		r.Get("/products", s.listProducts)
		r.Get("/products/{id}", s.getProduct)
		r.Get("/orders", s.listOrders)
		r.Get("/orders/{id}", s.getOrder)

		r.Get("/profiles", s.listProfiles)
		r.Get("/profiles/{id}", s.getProfile)
		r.Post("/profiles/{id}/toggle-follow", s.toggleFollow)

		r.Get("/conversations", s.listConversations)
		r.Get("/conversations/{id}/messages", s.listMessages)
		r.Post("/messages", s.sendMessage)
		r.Post("/messages/{id}/read", s.markMessageRead)

		r.Get("/seller/products", s.listSellerProducts)

		r.Get("/account/profile-draft", s.getProfileDraft)
		r.Put("/account/profile-draft", s.saveProfileDraft)
	})
}

func (s *Server) respond(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("encoding response", "error", err)
	}
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	s.Logger.Error("request failed", "error", err)
	http.Error(w, `{"message": "Internal Server Error"}`, http.StatusInternalServerError)
}

// notFound is the JSON shape for nil repository results; absence is a 404,
// never a 500.
func (s *Server) notFound(w http.ResponseWriter) {
	http.Error(w, `{"message": "Not Found"}`, http.StatusNotFound)
}

func decode[T any](r *http.Request) (T, error) {
	var v T
	err := json.NewDecoder(r.Body).Decode(&v)
	return v, err
}

func (s *Server) listFeed(w http.ResponseWriter, r *http.Request) {
	posts, err := s.Feed.List(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, posts)
}

func (s *Server) getPost(w http.ResponseWriter, r *http.Request) {
	post, err := s.Feed.GetPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, err)
		return
	}
	if post == nil {
		s.notFound(w)
		return
	}
	s.respond(w, http.StatusOK, post)
}

func (s *Server) likePost(w http.ResponseWriter, r *http.Request) {
	if err := s.Feed.Like(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusNoContent, nil)
}

func (s *Server) unlikePost(w http.ResponseWriter, r *http.Request) {
	if err := s.Feed.Unlike(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusNoContent, nil)
}

func (s *Server) listComments(w http.ResponseWriter, r *http.Request) {
	comments, err := s.Comments.ListByPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, comments)
}

func (s *Server) addComment(w http.ResponseWriter, r *http.Request) {
	comment, err := decode[core.NewComment](r)
	if err != nil {
		http.Error(w, `{"message": "Bad Request"}`, http.StatusBadRequest)
		return
	}

	created, err := s.Comments.Add(r.Context(), chi.URLParam(r, "id"), comment)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusCreated, created)
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.Marketplace.List(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, products)
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	product, err := s.Marketplace.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, err)
		return
	}
	if product == nil {
		s.notFound(w)
		return
	}
	s.respond(w, http.StatusOK, product)
}

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.Orders.List(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, orders)
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := s.Orders.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, err)
		return
	}
	if order == nil {
		s.notFound(w)
		return
	}
	s.respond(w, http.StatusOK, order)
}

func (s *Server) listProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := s.Profiles.List(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, profiles)
}

func (s *Server) getProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.Profiles.GetProfile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, err)
		return
	}
	if profile == nil {
		s.notFound(w)
		return
	}
	s.respond(w, http.StatusOK, profile)
}

func (s *Server) toggleFollow(w http.ResponseWriter, r *http.Request) {
	body, err := decode[struct {
		IsFollowing bool `json:"isFollowing"`
	}](r)
	if err != nil {
		http.Error(w, `{"message": "Bad Request"}`, http.StatusBadRequest)
		return
	}

	if err := s.Profiles.ToggleFollow(r.Context(), chi.URLParam(r, "id"), body.IsFollowing); err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusNoContent, nil)
}

func (s *Server) listConversations(w http.ResponseWriter, r *http.Request) {
	conversations, err := s.Messaging.Conversations(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, conversations)
}

func (s *Server) listMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := s.Messaging.Messages(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, messages)
}

func (s *Server) sendMessage(w http.ResponseWriter, r *http.Request) {
	req, err := decode[core.SendMessageRequest](r)
	if err != nil {
		http.Error(w, `{"message": "Bad Request"}`, http.StatusBadRequest)
		return
	}

	message, err := s.Messaging.Send(r.Context(), req)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusCreated, message)
}

func (s *Server) markMessageRead(w http.ResponseWriter, r *http.Request) {
	if err := s.Messaging.MarkAsRead(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusNoContent, nil)
}

func (s *Server) listSellerProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.Seller.Products(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, products)
}

func (s *Server) getProfileDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := s.Account.ProfileDraft(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, draft)
}

func (s *Server) saveProfileDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := decode[core.ProfileDraft](r)
	if err != nil {
		http.Error(w, `{"message": "Bad Request"}`, http.StatusBadRequest)
		return
	}

	if err := s.Account.SaveProfileDraft(r.Context(), draft); err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusNoContent, nil)
}
