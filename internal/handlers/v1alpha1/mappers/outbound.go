package mappers

import (
	api "github.com/dentamatch/marketplace/api/v1alpha1"
	"github.com/dentamatch/marketplace/internal/service"
	"github.com/dentamatch/marketplace/internal/service/mappers"
)

func InvitationBatchResultToApi(result *service.InvitationBatchResult) api.InvitationBatchResult {
	out := api.InvitationBatchResult{
		Invitations: []api.Invitation{},
	}
	for _, i := range result.Invitations {
		out.Invitations = append(out.Invitations, mappers.InvitationToApi(i))
	}
	if len(result.Failed) > 0 {
		out.Failed = result.Failed
	}
	return out
}

func DeleteJobResultToApi(result *service.DeleteJobResult) api.DeleteJobResult {
	return api.DeleteJobResult{
		Deleted:             result.Deleted,
		RelatedItemsDeleted: result.RelatedItemsDeleted,
	}
}
