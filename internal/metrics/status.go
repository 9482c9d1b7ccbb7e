// Package metrics exposes the prometheus collectors of every giftpool component.
package metrics

const namespace = "giftpool"

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func orUnknown(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
