package response

import "github.com/jinzhu/copier"

// copyView fills a response from a read model by matching field names.
func copyView[T any](src any) *T {
	var dst T
	if err := copier.Copy(&dst, src); err != nil {
		panic("response: copy view: " + err.Error())
	}
	return &dst
}
