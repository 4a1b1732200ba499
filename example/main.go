package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/forms/v1"
	"google.golang.org/api/option"

	survey "github.com/Jumpaku/go-survey"
	"github.com/Jumpaku/go-survey/export"
	"github.com/Jumpaku/go-survey/formmust"
)

func newFormClient(ctx context.Context) *formmust.Client {
	client, err := google.DefaultClient(ctx,
		forms.FormsBodyScope,
		forms.FormsResponsesReadonlyScope,
		drive.DriveFileScope,
	)
	if err != nil {
		log.Panic(err)
	}

	formsService, err := forms.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		log.Panic(err)
	}
	driveService, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		log.Panic(err)
	}
	return formmust.New(formsService, driveService)
}

func main() {
	publish := flag.Bool("publish", false, "publish the survey as a Google Form")
	flag.Parse()

	// Build a survey with a text and a multiple choice question
	session := survey.NewSession()
	session.SetTitle("T")

	name := session.AddQuestion().WithLabel("Name").WithRequired(true)
	session.UpdateQuestion(name)

	color := session.AddQuestion().
		WithLabel("Color").
		WithType(survey.QuestionTypeMultipleChoice, session.NewID)
	color = color.UpdateOptionText(color.Options[0].ID, "Red").AddOption(session.NewID)
	color = color.UpdateOptionText(color.Options[1].ID, "Blue")
	session.UpdateQuestion(color)

	// Fill it out
	session.SetTextResponse(name.ID, "Alice")
	session.SetChoiceResponse(color.ID, "Blue")

	// Print both documents
	snap := session.Snapshot()
	for _, doc := range []any{export.DefinitionDocument(snap.Definition), export.ResponsesDocument(snap.Responses)} {
		text, err := export.Render(doc, export.FormatJSON)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(text)
	}

	if !*publish {
		return
	}

	// Publish and read back what respondents submitted
	ctx := context.Background()
	client := newFormClient(ctx)
	published := client.Publish(ctx, snap.Definition)
	fmt.Printf("Published form: %s\n", published.ResponderURI)

	for _, submission := range client.FetchResponses(ctx, published) {
		text, err := export.Render(export.ResponsesDocument(submission.Answers), export.FormatJSON)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s:\n%s\n", submission.ResponseID, text)
	}
}
