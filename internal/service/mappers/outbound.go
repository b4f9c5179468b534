package mappers

import (
	api "github.com/dentamatch/marketplace/api/v1alpha1"
	"github.com/dentamatch/marketplace/internal/store/model"
)

func JobToApi(j model.Job) api.Job {
	job := api.Job{
		Id:                      j.ID,
		ClinicId:                j.ClinicID,
		JobType:                 j.JobType,
		ProfessionalRole:        j.ProfessionalRole,
		ShiftSpeciality:         j.ShiftSpeciality,
		Status:                  j.Status,
		AcceptedProfessionalSub: j.AcceptedProfessionalSub,
		ScheduledDate:           j.ScheduledDate,
		CompletedAt:             j.CompletedAt,
		CompletionNotes:         j.CompletionNotes,
		CreatedAt:               j.CreatedAt,
		UpdatedAt:               j.UpdatedAt,
	}

	if j.ClinicSnapshot != nil {
		job.Clinic = api.ClinicDetails(j.ClinicSnapshot.Data)
	}

	for _, change := range j.History() {
		job.StatusHistory = append(job.StatusHistory, api.StatusChange(change))
	}

	if j.Details == nil {
		return job
	}

	details := j.Details.Data
	if details.Temporary != nil {
		job.Temporary = &api.TemporaryJobFields{
			Date:       details.Temporary.Date,
			Hours:      details.Temporary.Hours,
			HourlyRate: details.Temporary.HourlyRate,
		}
	}
	if details.MultiDay != nil {
		job.MultiDay = &api.MultiDayJobView{
			MultiDayJobFields: api.MultiDayJobFields{
				Dates:       details.MultiDay.Dates,
				HoursPerDay: details.MultiDay.HoursPerDay,
				HourlyRate:  details.MultiDay.HourlyRate,
			},
			TotalDays: details.MultiDay.TotalDays,
		}
	}
	if details.Permanent != nil {
		job.Permanent = &api.PermanentJobFields{
			EmploymentType: details.Permanent.EmploymentType,
			SalaryMin:      details.Permanent.SalaryMin,
			SalaryMax:      details.Permanent.SalaryMax,
			Benefits:       details.Permanent.Benefits,
		}
	}

	return job
}

func JobListToApi(jobs model.JobList) api.JobList {
	jobList := []api.Job{}
	for _, j := range jobs {
		jobList = append(jobList, JobToApi(j))
	}
	return jobList
}

func ApplicationToApi(a model.Application) api.Application {
	return api.Application{
		Id:              a.ID,
		JobId:           a.JobID,
		ProfessionalSub: a.ProfessionalSub,
		ClinicId:        a.ClinicID,
		Status:          a.Status,
		Message:         a.Message,
		ProposedRate:    a.ProposedRate,
		Availability:    a.Availability,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func ApplicationListToApi(applications model.ApplicationList) api.ApplicationList {
	applicationList := []api.Application{}
	for _, a := range applications {
		applicationList = append(applicationList, ApplicationToApi(a))
	}
	return applicationList
}

func InvitationToApi(i model.Invitation) api.Invitation {
	return api.Invitation{
		Id:              i.ID,
		JobId:           i.JobID,
		ProfessionalSub: i.ProfessionalSub,
		ClinicId:        i.ClinicID,
		Status:          i.Status,
		Note:            i.Note,
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}
}

func InvitationListToApi(invitations model.InvitationList) api.InvitationList {
	invitationList := []api.Invitation{}
	for _, i := range invitations {
		invitationList = append(invitationList, InvitationToApi(i))
	}
	return invitationList
}

func NegotiationToApi(n model.Negotiation) api.Negotiation {
	negotiation := api.Negotiation{
		Id:            n.ID,
		ApplicationId: n.ApplicationID,
		JobId:         n.JobID,
		Status:        n.Status,
		LastOfferPay:  n.LastOfferPay,
		LastOfferFrom: n.LastOfferFrom,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
	}

	if n.Offers != nil {
		for _, offer := range n.Offers.Data {
			negotiation.Offers = append(negotiation.Offers, api.Offer(offer))
		}
	}

	return negotiation
}

func NegotiationListToApi(negotiations model.NegotiationList) []api.Negotiation {
	negotiationList := []api.Negotiation{}
	for _, n := range negotiations {
		negotiationList = append(negotiationList, NegotiationToApi(n))
	}
	return negotiationList
}

func ProfessionalToApi(p model.Professional) api.Professional {
	return api.Professional{
		Sub:       p.Sub,
		Role:      p.Role,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Phone:     p.Phone,
		UpdatedAt: p.UpdatedAt,
	}
}
