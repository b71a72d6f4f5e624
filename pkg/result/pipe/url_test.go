package pipe

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rlch/oxidized/pkg/result"
)

func TestURLPipeline(t *testing.T) {
	t.Parallel()

	urls := []string{
		"https://www.example.com",
		"https://www.test.org",
		"https://www.google.com",
		"https://www.microsoft.com",
		"https://www.micros---oft.com",
		"https://www.mic--ros---oft.com",

		"invalid-url",
		"ftp://invalid-protocol.com",
	}

	results := processURLs(context.Background(), urls)
	assert.Len(t, results, len(urls))

	invalid := 0
	for _, res := range results {
		if res == "invalid" {
			invalid++
			continue
		}
		assert.True(t, strings.HasPrefix(res, "title length: "), res)
	}
	assert.Equal(t, 2, invalid)
}

func processURLs(ctx context.Context, urls []string) []string {
	handlers := FinallyHandlers[int, error, string]{
		OnOk: func(_ context.Context, n int) string {
			return fmt.Sprintf("title length: %d", n)
		},
		OnErr: func(_ context.Context, _ error) string { return "invalid" },
		OnStop: func(_ context.Context, _ Car[int, error]) string {
			return "invalid"
		},
	}

	titleLength := AndThen(func(_ context.Context, title string) result.Result[int, error] {
		return result.Ok[int, error](len(title))
	})

	return Unload(Finally(ctx,
		Run(ctx,
			Run(ctx,
				Run(ctx, Load[string, error](ctx, urls), Validate(validateURL), 2),
				Try(fetchTitle), 2),
			titleLength, 2),
		handlers))
}

func fetchTitle(ctx context.Context, url string) (string, error) {
	if valid, _ := validateURL(ctx, url); !valid {
		return "", errors.New("invalid URL")
	}
	return "Mock Page Title for " + url, nil
}

func validateURL(_ context.Context, url string) (bool, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return false, errors.New("URL must start with http:// or https://")
	}
	return true, nil
}
