package service

// OpinionServiceInterface defines the contract for opinion business logic
type OpinionServiceInterface interface {
	Create(req *CreateOpinionRequest) (*OpinionResponse, error)
	GetByID(id uint) (*OpinionResponse, error)
	List() ([]OpinionResponse, error)
	Update(id uint, req *UpdateOpinionRequest) (*OpinionResponse, error)
	Delete(id uint) error
	PickRandom() (*OpinionResponse, error)
}
