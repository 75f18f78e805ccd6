package query

// Descriptor is everything a store needs to answer one catalog request.
type Descriptor struct {
	Filter Predicate
	Sort   Sort
	Window Window
}

// Compile turns a normalized query into a Descriptor.
func Compile(q ProductQuery) (Descriptor, error) {
	sort, err := ResolveSort(q.SortBy(), q.SortOrder())
	if err != nil {
		return Descriptor{}, err
	}

	window, err := Paginate(q.Page(), q.Size())
	if err != nil {
		return Descriptor{}, err
	}

	return Descriptor{
		Filter: CompileFilter(q),
		Sort:   sort,
		Window: window,
	}, nil
}
