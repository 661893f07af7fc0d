package handler

import "gppgateway/internal/notice/models"

// SuggestPatchesResponse is the HTTP response for POST /suggest-patches.
type SuggestPatchesResponse struct {
	SuggestedPatches []models.Patch `json:"suggestedPatches"`
}

// ApplyPatchesResponse is the HTTP response for POST /apply-patches.
type ApplyPatchesResponse struct {
	PatchedNoticeXML string `json:"patchedNoticeXml"`
}
