package service

import (
	"context"
	"testing"

	"dzairbox/internal/chat/domain"

	"github.com/stretchr/testify/require"
)

type fakeAgent struct {
	replies []string
	calls   int
}

func (f *fakeAgent) SendChat(ctx context.Context, req *domain.AgentRequest) (*domain.AgentResponse, error) {
	reply := f.replies[f.calls]
	f.calls++
	return &domain.AgentResponse{Reply: reply}, nil
}

func TestScrapeBusinessJSON(t *testing.T) {
	extracted, reply := ScrapeBusinessJSON(
		"Super, j'ai noté le nom.\n```json\n{\"name\": \"Salon Amel\", \"city\": \"Alger\"}\n```\nQuel est votre numéro ?")

	require.Equal(t, "Salon Amel", extracted.Name)
	require.Equal(t, "Alger", extracted.City)
	require.NotContains(t, reply, "{")
	require.NotContains(t, reply, "```")
	require.Contains(t, reply, "Quel est votre numéro ?")
}

func TestScrapeBusinessJSONNoBlob(t *testing.T) {
	extracted, reply := ScrapeBusinessJSON("Bonjour ! Parlez-moi de votre activité.")
	require.Equal(t, domain.ExtractedBusiness{}, extracted)
	require.Equal(t, "Bonjour ! Parlez-moi de votre activité.", reply)
}

func TestScrapeBusinessJSONMalformed(t *testing.T) {
	extracted, reply := ScrapeBusinessJSON("Voici: {name: Salon} et ensuite")
	require.Equal(t, domain.ExtractedBusiness{}, extracted)
	require.Equal(t, "Voici: {name: Salon} et ensuite", reply)
}

func TestMergeAcrossTurns(t *testing.T) {
	agent := &fakeAgent{replies: []string{
		`{"name": "Salon Amel", "category": "beaute"} D'accord, et le téléphone ?`,
		`{"phone": "+213555000111", "city": "Alger"} Merci, c'est noté.`,
	}}
	svc := NewOnboardingService(agent)

	var known domain.ExtractedBusiness

	_, err := svc.ProcessMessage(context.Background(), &known, "Je tiens un salon de beauté qui s'appelle Salon Amel")
	require.NoError(t, err)
	require.Equal(t, "Salon Amel", known.Name)
	require.False(t, known.IsComplete())

	_, err = svc.ProcessMessage(context.Background(), &known, "Le 0555 00 01 11, à Alger")
	require.NoError(t, err)

	// Earlier fields survive, later fields fill in.
	require.Equal(t, "Salon Amel", known.Name)
	require.Equal(t, "beaute", known.Category)
	require.Equal(t, "+213555000111", known.Phone)
	require.Equal(t, "Alger", known.City)
	require.True(t, known.IsComplete())
}

func TestMergeLaterTurnWins(t *testing.T) {
	known := domain.ExtractedBusiness{Name: "Ancien Nom", Phone: "+213555000111"}
	known.Merge(domain.ExtractedBusiness{Name: "Nouveau Nom"})

	require.Equal(t, "Nouveau Nom", known.Name)
	require.Equal(t, "+213555000111", known.Phone, "empty fields must not erase known data")
}
