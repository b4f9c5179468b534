package mappers

import (
	"github.com/google/uuid"

	api "github.com/dentamatch/marketplace/api/v1alpha1"
	"github.com/dentamatch/marketplace/internal/auth"
	"github.com/dentamatch/marketplace/internal/service/mappers"
	"github.com/dentamatch/marketplace/internal/store/model"
)

func temporaryDetails(fields *api.TemporaryJobFields) *model.TemporaryDetails {
	if fields == nil {
		return nil
	}
	return &model.TemporaryDetails{
		Date:       fields.Date,
		Hours:      fields.Hours,
		HourlyRate: fields.HourlyRate,
	}
}

func multiDayDetails(fields *api.MultiDayJobFields) *model.MultiDayDetails {
	if fields == nil {
		return nil
	}
	return &model.MultiDayDetails{
		Dates:       fields.Dates,
		HoursPerDay: fields.HoursPerDay,
		HourlyRate:  fields.HourlyRate,
		TotalDays:   len(fields.Dates),
	}
}

func permanentDetails(fields *api.PermanentJobFields) *model.PermanentDetails {
	if fields == nil {
		return nil
	}
	return &model.PermanentDetails{
		EmploymentType: fields.EmploymentType,
		SalaryMin:      fields.SalaryMin,
		SalaryMax:      fields.SalaryMax,
		Benefits:       fields.Benefits,
	}
}

func JobCreateFormApi(jobType string, user auth.User, resource api.JobCreate) mappers.JobCreateForm {
	form := mappers.JobCreateForm{
		ClinicID:         user.ClinicID,
		OwnerSub:         user.Subject,
		JobType:          jobType,
		ProfessionalRole: resource.ProfessionalRole,
		ShiftSpeciality:  resource.ShiftSpeciality,
		Details: model.JobDetails{
			Temporary: temporaryDetails(resource.Temporary),
			MultiDay:  multiDayDetails(resource.MultiDay),
			Permanent: permanentDetails(resource.Permanent),
		},
	}

	if resource.Clinic != nil {
		form.Clinic = model.ClinicSnapshot(*resource.Clinic)
	}

	return form
}

func JobUpdateFormApi(jobID uuid.UUID, user auth.User, resource api.JobUpdate) mappers.JobUpdateForm {
	return mappers.JobUpdateForm{
		JobID:            jobID,
		RequesterSub:     user.Subject,
		ProfessionalRole: resource.ProfessionalRole,
		ShiftSpeciality:  resource.ShiftSpeciality,
		Temporary:        temporaryDetails(resource.Temporary),
		MultiDay:         multiDayDetails(resource.MultiDay),
		Permanent:        permanentDetails(resource.Permanent),
	}
}

func StatusUpdateFormApi(jobID uuid.UUID, user auth.User, resource api.StatusUpdate) mappers.StatusUpdateForm {
	return mappers.StatusUpdateForm{
		JobID:                   jobID,
		RequesterSub:            user.Subject,
		Status:                  resource.Status,
		AcceptedProfessionalSub: resource.AcceptedProfessionalSub,
		ScheduledDate:           resource.ScheduledDate,
		Notes:                   resource.Notes,
	}
}

func ApplicationFormApi(jobID uuid.UUID, user auth.User, resource api.ApplicationCreate) mappers.ApplicationCreateForm {
	return mappers.ApplicationCreateForm{
		JobID:           jobID,
		ProfessionalSub: user.Subject,
		Message:         resource.Message,
		ProposedRate:    resource.ProposedRate,
		Availability:    resource.Availability,
	}
}

func InvitationFormApi(jobID uuid.UUID, user auth.User, resource api.InvitationCreate) mappers.InvitationBatchForm {
	return mappers.InvitationBatchForm{
		JobID:            jobID,
		IssuerSub:        user.Subject,
		ProfessionalSubs: resource.ProfessionalSubs,
		Note:             resource.Note,
	}
}

func NegotiationFormApi(applicationID uuid.UUID, resource api.NegotiationCreate) mappers.NegotiationCreateForm {
	return mappers.NegotiationCreateForm{
		ApplicationID: applicationID,
		ProposedPay:   resource.ProposedPay,
		Note:          resource.Note,
	}
}

func ProfessionalFormApi(user auth.User, resource api.ProfessionalUpdate) mappers.ProfessionalForm {
	return mappers.ProfessionalForm{
		Sub:       user.Subject,
		Role:      resource.Role,
		FirstName: resource.FirstName,
		LastName:  resource.LastName,
		Email:     resource.Email,
		Phone:     resource.Phone,
	}
}
