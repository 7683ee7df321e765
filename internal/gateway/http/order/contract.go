package order

import "context"

type httpClient interface {
	Do(ctx context.Context, method, httpMethod, path string, body, out any) error
}
