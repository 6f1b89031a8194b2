// Package publish maintains the local publish-status cache: a mapping
// from content ids (generation results or raw text inputs) to remote post
// ids, refreshed via batch lookups and updated on confirmed user actions.
//
// Updates are confirmed-only: nothing is written to the mapping until the
// server has answered, so a failed publish never leaves a dangling
// "published" state. The presence of a mapping entry is the sole signal
// of published state; there is no separate in-flight marker.
package publish

import (
	"context"
	"errors"
	"fmt"

	"github.com/daycast-app/daycast/internal/client/api"
	"github.com/daycast-app/daycast/internal/client/models"
)

// ErrNotPublished is returned by Unpublish when no post id is mapped for
// the content id.
var ErrNotPublished = errors.New("not published")

// Endpoint is the slice of the remote API one reconciler instance talks
// to. Separate adapters exist for generation results and text inputs.
type Endpoint interface {
	Statuses(ctx context.Context, ids []string) (map[string]*string, error)
	Publish(ctx context.Context, id string) (*models.PublishedPost, error)
	Unpublish(ctx context.Context, postID string) error
}

// Reconciler keeps the content id → post id mapping for one kind of
// content.
type Reconciler struct {
	endpoint Endpoint
	posts    map[string]string
}

func New(endpoint Endpoint) *Reconciler {
	return &Reconciler{endpoint: endpoint, posts: make(map[string]string)}
}

// Refresh issues one batch status lookup and replaces the mapping for
// exactly the given ids with whatever the remote reports. Entries for ids
// outside the batch are left alone. Skipped entirely when ids is empty.
func (r *Reconciler) Refresh(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	statuses, err := r.endpoint.Statuses(ctx, ids)
	if err != nil {
		return fmt.Errorf("refreshing publish status: %w", err)
	}
	for _, id := range ids {
		delete(r.posts, id)
		if postID, ok := statuses[id]; ok && postID != nil {
			r.posts[id] = *postID
		}
	}
	return nil
}

// Publish asks the server to publish the content and records the returned
// post id on success. On failure the mapping is untouched and the error is
// surfaced to the caller.
func (r *Reconciler) Publish(ctx context.Context, id string) (*models.PublishedPost, error) {
	post, err := r.endpoint.Publish(ctx, id)
	if err != nil {
		return nil, err
	}
	r.posts[id] = post.ID
	return post, nil
}

// Unpublish requires an existing mapping; on success the entry is removed,
// indistinguishable from "never published". On failure it stays intact.
func (r *Reconciler) Unpublish(ctx context.Context, id string) error {
	postID, ok := r.posts[id]
	if !ok {
		return ErrNotPublished
	}
	if err := r.endpoint.Unpublish(ctx, postID); err != nil {
		return err
	}
	delete(r.posts, id)
	return nil
}

// PostID returns the mapped post id for the content, if published.
func (r *Reconciler) PostID(id string) (string, bool) {
	postID, ok := r.posts[id]
	return postID, ok
}

// Published reports whether the content currently maps to a live post.
func (r *Reconciler) Published(id string) bool {
	_, ok := r.posts[id]
	return ok
}

// resultEndpoint adapts the API's generation-result publish operations.
type resultEndpoint struct {
	client api.Client
}

func (e resultEndpoint) Statuses(ctx context.Context, ids []string) (map[string]*string, error) {
	return e.client.ResultStatuses(ctx, ids)
}

func (e resultEndpoint) Publish(ctx context.Context, id string) (*models.PublishedPost, error) {
	return e.client.PublishResult(ctx, id)
}

func (e resultEndpoint) Unpublish(ctx context.Context, postID string) error {
	return e.client.Unpublish(ctx, postID)
}

// inputEndpoint adapts the API's text-input publish operations.
type inputEndpoint struct {
	client api.Client
}

func (e inputEndpoint) Statuses(ctx context.Context, ids []string) (map[string]*string, error) {
	return e.client.InputStatuses(ctx, ids)
}

func (e inputEndpoint) Publish(ctx context.Context, id string) (*models.PublishedPost, error) {
	return e.client.PublishInput(ctx, id)
}

func (e inputEndpoint) Unpublish(ctx context.Context, postID string) error {
	return e.client.Unpublish(ctx, postID)
}

// ForResults builds a reconciler over generation-result publish state.
func ForResults(client api.Client) *Reconciler {
	return New(resultEndpoint{client: client})
}

// ForInputs builds a reconciler over text-input publish state.
func ForInputs(client api.Client) *Reconciler {
	return New(inputEndpoint{client: client})
}
