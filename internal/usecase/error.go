package usecase

import "rentacar/internal/infra"

func isNotFound(err error) bool {
	return infra.IsKind(err, infra.KindNotFound)
}

func isUnauthenticated(err error) bool {
	return infra.IsKind(err, infra.KindUnauthenticated)
}

func isMalformed(err error) bool {
	return infra.IsKind(err, infra.KindMalformedResponse)
}
