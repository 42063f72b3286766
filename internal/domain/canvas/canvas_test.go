package canvas_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seedworks/launchpad/internal/domain/canvas"
	"github.com/seedworks/launchpad/internal/domain/idea"
	"github.com/seedworks/launchpad/internal/state"
)

func TestGenerate_AllNineBlocksPresent(t *testing.T) {
	content := canvas.Generate("Foo", "a description")

	require.Len(t, content, 9)
	for _, block := range canvas.Blocks() {
		require.Contains(t, content, block.Key)
		require.NotEmpty(t, content[block.Key])
	}
}

func TestGenerate_ValuePropositionCarriesTitle(t *testing.T) {
	content := canvas.Generate("Foo", "anything")
	require.Contains(t, content[canvas.ValueProposition], "Foo")

	// Every other block is fixed boilerplate regardless of the idea.
	other := canvas.Generate("Bar", "something else")
	for key, text := range content {
		if key == canvas.ValueProposition {
			continue
		}
		require.Equal(t, text, other[key])
		require.NotContains(t, text, "Foo")
	}
}

func TestBlocks_LayoutOrder(t *testing.T) {
	blocks := canvas.Blocks()
	require.Len(t, blocks, 9)
	require.Equal(t, canvas.KeyPartners, blocks[0].Key)
	require.Equal(t, "Key Partners", blocks[0].Title)
	require.Equal(t, canvas.RevenueStreams, blocks[8].Key)
}

func TestService_GenerateMarksIdea(t *testing.T) {
	store := state.New(state.Seed{Tokens: 100}, nil)
	target := store.CreateIdea("Foo", "desc", idea.StageIdea)
	svc := canvas.NewService(store, nil)

	content, err := svc.Generate(target.ID)
	require.NoError(t, err)
	require.Contains(t, content[canvas.ValueProposition], "Foo")

	got, ok := store.Idea(target.ID)
	require.True(t, ok)
	require.True(t, got.CanvasGenerated)
}

func TestService_GenerateUnknownIdea(t *testing.T) {
	store := state.New(state.Seed{Tokens: 100}, nil)
	svc := canvas.NewService(store, nil)

	_, err := svc.Generate("missing")
	require.ErrorIs(t, err, idea.ErrIdeaNotFound)
}
