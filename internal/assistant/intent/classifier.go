package intent

import (
	"math"

	logx "github.com/oreana/assistant-server/pkg/logger"

	"github.com/oreana/assistant-server/internal/assistant/model"
)

// trainingExamples is the fixed labeled table the classifier is fitted on at
// process start. Order matters only for deterministic tie-breaking.
var trainingExamples = []struct {
	label    model.Intent
	examples []string
}{
	{model.IntentCourseInfo, []string{
		"Tell me about courses",
		"What courses do you offer?",
		"Give me course details",
	}},
	{model.IntentFees, []string{
		"What is the fee?",
		"Tell me the cost",
		"How much does it cost?",
	}},
	{model.IntentCareerAdvice, []string{
		"Guide me for my career",
		"What should I learn?",
		"Career suggestions?",
	}},
	{model.IntentLeadCapture, []string{
		"My name is John",
		"Call me at 9876543210",
		"I want to enroll",
		"My email is test@gmail.com",
	}},
	{model.IntentGeneral, []string{
		"Hello there",
		"Hi, can you help me?",
		"Thanks for the information",
		"What can you do?",
	}},
}

const (
	trainEpochs       = 500
	trainLearningRate = 0.5
)

// Classifier maps an utterance to one of the fixed intent labels using
// TF-IDF features and one-vs-rest logistic regression. It is fitted once and
// immutable afterwards, so a single instance is shared across requests with
// no locking. There is no confidence threshold: the highest-scoring trained
// label always wins, even for out-of-distribution input.
type Classifier struct {
	vec     *vectorizer
	labels  []model.Intent
	weights [][]float64 // per label: vec.size() feature weights + trailing bias
}

// NewClassifier fits the model on the built-in example table.
func NewClassifier() *Classifier {
	var docs []string
	var labelIdx []int
	c := &Classifier{}
	for i, group := range trainingExamples {
		c.labels = append(c.labels, group.label)
		for _, ex := range group.examples {
			docs = append(docs, ex)
			labelIdx = append(labelIdx, i)
		}
	}

	c.vec = fitVectorizer(docs)

	features := make([][]float64, len(docs))
	for i, doc := range docs {
		features[i] = c.vec.transform(doc)
	}

	c.weights = make([][]float64, len(c.labels))
	for i := range c.labels {
		c.weights[i] = trainBinary(features, labelIdx, i)
	}

	logx.Debug().
		Int("labels", len(c.labels)).
		Int("vocabulary", c.vec.size()).
		Int("examples", len(docs)).
		Msg("intent classifier fitted")
	return c
}

// Classify returns the highest-scoring intent label for the text.
func (c *Classifier) Classify(text string) model.Intent {
	x := c.vec.transform(text)

	best := 0
	bestScore := math.Inf(-1)
	for i, w := range c.weights {
		s := score(w, x)
		if s > bestScore {
			bestScore = s
			best = i
		}
	}
	return c.labels[best]
}

// Labels returns the closed label set in training order.
func (c *Classifier) Labels() []model.Intent {
	out := make([]model.Intent, len(c.labels))
	copy(out, c.labels)
	return out
}

// trainBinary fits one one-vs-rest logistic regression head with full-batch
// gradient descent. Weights start at zero so training is fully deterministic.
func trainBinary(features [][]float64, labelIdx []int, positive int) []float64 {
	dim := 0
	if len(features) > 0 {
		dim = len(features[0])
	}
	w := make([]float64, dim+1) // final slot is the bias

	for epoch := 0; epoch < trainEpochs; epoch++ {
		grad := make([]float64, dim+1)
		for i, x := range features {
			y := 0.0
			if labelIdx[i] == positive {
				y = 1.0
			}
			err := sigmoid(score(w, x)) - y
			for j, xj := range x {
				grad[j] += err * xj
			}
			grad[dim] += err
		}
		scale := trainLearningRate / float64(len(features))
		for j := range w {
			w[j] -= scale * grad[j]
		}
	}
	return w
}

func score(w, x []float64) float64 {
	s := w[len(w)-1] // bias
	for j, xj := range x {
		s += w[j] * xj
	}
	return s
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
