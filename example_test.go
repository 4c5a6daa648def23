package commentscore_test

import (
	"encoding/json"
	"fmt"

	"github.com/ahrav/go-commentscore"
)

func ExampleAnalyzeRequest() {
	req := commentscore.AnalyzeRequest{
		Comment: commentscore.Comment{Text: "hello"},
		RequestedAttributes: map[commentscore.Attribute]commentscore.AttributeConfig{
			commentscore.AttributeToxicity: {},
		},
	}

	body, _ := json.Marshal(req)
	fmt.Println(string(body))
	// Output: {"comment":{"text":"hello"},"requestedAttributes":{"TOXICITY":{}}}
}

func ExampleAnalyzeResponse() {
	body := []byte(`{
		"attributeScores": {
			"TOXICITY": {"summaryScore": {"value": 0.83, "type": "PROBABILITY"}}
		},
		"languages": ["en"]
	}`)

	var resp commentscore.AnalyzeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		fmt.Println("decode:", err)
		return
	}

	summary := resp.AttributeScores[commentscore.AttributeToxicity].SummaryScore
	fmt.Printf("%s: %.2f\n", commentscore.AttributeToxicity, summary.Value)
	// Output: TOXICITY: 0.83
}

func ExampleAttributeConfig() {
	threshold := 0.8
	cfg := commentscore.AttributeConfig{
		ScoreType:      commentscore.ScoreTypeProbability,
		ScoreThreshold: &threshold,
	}

	body, _ := json.Marshal(cfg)
	fmt.Println(string(body))
	// Output: {"scoreType":"PROBABILITY","scoreThreshold":0.8}
}

func ExampleSuggestScoreRequest() {
	req := commentscore.SuggestScoreRequest{
		Comment: commentscore.Comment{Text: "you are all nice"},
		AttributeScores: map[commentscore.Attribute]commentscore.AttributeScore{
			commentscore.AttributeToxicity: {
				SummaryScore: &commentscore.Score{Value: 0.1, Type: commentscore.ScoreTypeProbability},
			},
		},
	}

	body, _ := json.Marshal(req)
	fmt.Println(string(body))
	// Output: {"comment":{"text":"you are all nice"},"attributeScores":{"TOXICITY":{"summaryScore":{"value":0.1,"type":"PROBABILITY"}}}}
}
