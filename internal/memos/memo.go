package memos

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

const RelationComment = "COMMENT"

type Memo struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	RowStatus    string     `json:"rowStatus"`
	CreatorID    int        `json:"creatorId"`
	CreatorName  string     `json:"creatorName"`
	Visibility   string     `json:"visibility"`
	CreatedTs    int64      `json:"createdTs"`
	UpdatedTs    int64      `json:"updatedTs"`
	Content      string     `json:"content"`
	Pinned       bool       `json:"pinned"`
	ResourceList []Resource `json:"resourceList"`
	RelationList []Relation `json:"relationList"`
}

type Resource struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Filename  string `json:"filename"`
	Type      string `json:"type"`
	CreatedTs int64  `json:"createdTs"`
}

type Relation struct {
	MemoID        int    `json:"memoId"`
	RelatedMemoID int    `json:"relatedMemoId"`
	Type          string `json:"type"`
}

// ErrUnexpectedShape reports a memo list response body that is neither a
// bare JSON array nor a {"data": [...]} envelope.
var ErrUnexpectedShape = errors.New("memo list response has unexpected shape")

// DecodeMemoList decodes the memo list endpoint response. Older Memos
// releases return a bare array, newer ones wrap it in a data envelope.
func DecodeMemoList(r io.Reader) ([]Memo, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read memo list response: %w", err)
	}

	var list []Memo
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var envelope struct {
		Data []Memo `json:"data"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}
	if envelope.Data == nil {
		return nil, ErrUnexpectedShape
	}

	return envelope.Data, nil
}
