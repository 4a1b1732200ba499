package form

import (
	survey "github.com/Jumpaku/go-survey"
	"google.golang.org/api/forms/v1"
)

// Batch holds the update requests that fill a newly created form with the
// questions of a survey definition.
type Batch struct {
	requests []*forms.Request
	// created[i] is the question created by requests[i], if any.
	created []*survey.Question
}

// NewBatch builds the requests for def. The title is set when the form is
// created, so the batch starts with the description.
func NewBatch(def survey.Definition) (batch *Batch, err error) {
	b := &Batch{}
	b.add(&forms.Request{
		UpdateFormInfo: &forms.UpdateFormInfoRequest{
			Info:       &forms.Info{Description: def.Description},
			UpdateMask: "description",
		},
	}, nil)

	for index, q := range def.Questions {
		item, err := Item(q)
		if err != nil {
			return nil, err
		}
		b.add(&forms.Request{
			CreateItem: &forms.CreateItemRequest{
				Item: item,
				Location: &forms.Location{
					Index:           int64(index),
					ForceSendFields: []string{"Index"},
				},
			},
		}, &q)
	}
	return b, nil
}

func (b *Batch) add(req *forms.Request, created *survey.Question) {
	b.requests = append(b.requests, req)
	b.created = append(b.created, created)
}

func (b *Batch) Requests() []*forms.Request {
	return append([]*forms.Request{}, b.requests...)
}

// questions pairs the Google question ids from the batch replies with the
// questions that created them.
func (b *Batch) questions(replies []*forms.Response) map[string]survey.Question {
	out := map[string]survey.Question{}
	for i, reply := range replies {
		if i >= len(b.created) || b.created[i] == nil || reply == nil || reply.CreateItem == nil {
			continue
		}
		for _, questionID := range reply.CreateItem.QuestionId {
			out[questionID] = *b.created[i]
		}
	}
	return out
}
