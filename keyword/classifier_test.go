package keyword_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/coursecheck"
	"github.com/fwojciec/coursecheck/keyword"
	"github.com/stretchr/testify/assert"
)

func TestClassifier_Classify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		expected coursecheck.Intent
	}{
		{"aggregate question with list marker", "Which courses are accepted?", coursecheck.IntentEnumerate},
		{"list request", "List everything that is credited", coursecheck.IntentEnumerate},
		{"case-folds markers", "WHICH COURSES OVERLAP", coursecheck.IntentEnumerate},
		{"short question about one course", "Is Blockchain in Finance accepted?", coursecheck.IntentLookup},
		{"bare course name", "Blockchain in Finance", coursecheck.IntentLookup},
		{"short aggregate keyword without list marker", "What is shared?", coursecheck.IntentLookup},
		{
			"long aggregate question without list marker",
			"What exactly is accepted for credit if I took the advanced seminar on decentralized finance last spring semester?",
			coursecheck.IntentEnumerate,
		},
		{
			"long question with keyword inside a word",
			"Tell me whether the seminar on decentralized finance from last spring semester counts toward my degree at all",
			coursecheck.IntentEnumerate,
		},
		{"marker inside another word", "Is the specialist track available?", coursecheck.IntentEnumerate},
		{"no keywords", "Digital Payments", coursecheck.IntentLookup},
	}

	classifier := keyword.NewClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, classifier.Classify(tt.query))
		})
	}
}

func TestClassifier_TokenCeiling(t *testing.T) {
	t.Parallel()

	classifier := keyword.NewClassifier()

	atCeiling := "what " + strings.Repeat("word ", keyword.DefaultMaxSpecificTokens-1)
	overCeiling := atCeiling + "more"

	assert.Equal(t, coursecheck.IntentLookup, classifier.Classify(atCeiling))
	assert.Equal(t, coursecheck.IntentEnumerate, classifier.Classify(overCeiling))
}

func TestClassifier_CustomKeywords(t *testing.T) {
	t.Parallel()

	classifier := &keyword.Classifier{
		Keywords:          []string{"welche"},
		ListMarkers:       []string{"kurse"},
		MaxSpecificTokens: 5,
	}

	assert.Equal(t, coursecheck.IntentEnumerate, classifier.Classify("Welche Kurse werden anerkannt?"))
	assert.Equal(t, coursecheck.IntentLookup, classifier.Classify("Which courses are accepted?"))
}

func TestClassifier_IsDeterministic(t *testing.T) {
	t.Parallel()

	classifier := keyword.NewClassifier()
	queries := []string{"Which courses are accepted?", "Is Blockchain in Finance accepted?", "Digital Payments"}

	for _, q := range queries {
		first := classifier.Classify(q)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, classifier.Classify(q))
		}
	}
}
