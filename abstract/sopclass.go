// Package abstract is the catalog of Abstract Syntaxes (SOP Classes) a peer
// may name in a Presentation Context. It mirrors the transfer package: an
// immutable set built once, lookups that never fail, and every built-in
// entry registered in the shared UID registry.
//
// SOP Class UIDs are listed in DICOM Part 6, Annex A
// https://dicom.nema.org/medical/dicom/current/output/chtml/part06/chapter_A.html
package abstract

// ApplicationContextUID names the DICOM application context carried in every
// A-ASSOCIATE request.
const ApplicationContextUID = "1.2.840.10008.3.1.1.1"

// Verification Service
const (
	VerificationSOPClass = "1.2.840.10008.1.1"
)

// Storage Service
const (
	ComputedRadiographyImageStorage        = "1.2.840.10008.5.1.4.1.1.1"
	DigitalXRayImageStorageForPresentation = "1.2.840.10008.5.1.4.1.1.1.1"
	DigitalXRayImageStorageForProcessing   = "1.2.840.10008.5.1.4.1.1.1.1.1"
	DigitalMammographyXRayImageStorage     = "1.2.840.10008.5.1.4.1.1.1.2"
	CTImageStorage                         = "1.2.840.10008.5.1.4.1.1.2"
	EnhancedCTImageStorage                 = "1.2.840.10008.5.1.4.1.1.2.1"
	UltrasoundMultiFrameImageStorage       = "1.2.840.10008.5.1.4.1.1.3.1"
	MRImageStorage                         = "1.2.840.10008.5.1.4.1.1.4"
	EnhancedMRImageStorage                 = "1.2.840.10008.5.1.4.1.1.4.1"
	MRSpectroscopyStorage                  = "1.2.840.10008.5.1.4.1.1.4.2"
	UltrasoundImageStorage                 = "1.2.840.10008.5.1.4.1.1.6.1"
	SecondaryCaptureImageStorage           = "1.2.840.10008.5.1.4.1.1.7"
	MultiFrameTrueColorSecondaryCapture    = "1.2.840.10008.5.1.4.1.1.7.4"
	GrayscaleSoftcopyPresentationState     = "1.2.840.10008.5.1.4.1.1.11.1"
	XRayAngiographicImageStorage           = "1.2.840.10008.5.1.4.1.1.12.1"
	XRayRadiofluoroscopicImageStorage      = "1.2.840.10008.5.1.4.1.1.12.2"
	BreastTomosynthesisImageStorage        = "1.2.840.10008.5.1.4.1.1.13.1.3"
	NuclearMedicineImageStorage            = "1.2.840.10008.5.1.4.1.1.20"
	VLEndoscopicImageStorage               = "1.2.840.10008.5.1.4.1.1.77.1.1"
	VLPhotographicImageStorage             = "1.2.840.10008.5.1.4.1.1.77.1.4"
	VLWholeSlideMicroscopyImageStorage     = "1.2.840.10008.5.1.4.1.1.77.1.6"
	BasicTextSRStorage                     = "1.2.840.10008.5.1.4.1.1.88.11"
	EnhancedSRStorage                      = "1.2.840.10008.5.1.4.1.1.88.22"
	ComprehensiveSRStorage                 = "1.2.840.10008.5.1.4.1.1.88.33"
	KeyObjectSelectionDocumentStorage      = "1.2.840.10008.5.1.4.1.1.88.59"
	EncapsulatedPDFStorage                 = "1.2.840.10008.5.1.4.1.1.104.1"
	EncapsulatedCDAStorage                 = "1.2.840.10008.5.1.4.1.1.104.2"
	PETImageStorage                        = "1.2.840.10008.5.1.4.1.1.128"
	EnhancedPETImageStorage                = "1.2.840.10008.5.1.4.1.1.130"
	RTImageStorage                         = "1.2.840.10008.5.1.4.1.1.481.1"
	RTDoseStorage                          = "1.2.840.10008.5.1.4.1.1.481.2"
	RTStructureSetStorage                  = "1.2.840.10008.5.1.4.1.1.481.3"
	RTPlanStorage                          = "1.2.840.10008.5.1.4.1.1.481.5"
)

// Query/Retrieve Service
const (
	PatientRootQueryRetrieveInformationModelFind      = "1.2.840.10008.5.1.4.1.2.1.1"
	PatientRootQueryRetrieveInformationModelMove      = "1.2.840.10008.5.1.4.1.2.1.2"
	PatientRootQueryRetrieveInformationModelGet       = "1.2.840.10008.5.1.4.1.2.1.3"
	StudyRootQueryRetrieveInformationModelFind        = "1.2.840.10008.5.1.4.1.2.2.1"
	StudyRootQueryRetrieveInformationModelMove        = "1.2.840.10008.5.1.4.1.2.2.2"
	StudyRootQueryRetrieveInformationModelGet         = "1.2.840.10008.5.1.4.1.2.2.3"
	PatientStudyOnlyQueryRetrieveInformationModelFind = "1.2.840.10008.5.1.4.1.2.3.1"
	PatientStudyOnlyQueryRetrieveInformationModelMove = "1.2.840.10008.5.1.4.1.2.3.2"
	PatientStudyOnlyQueryRetrieveInformationModelGet  = "1.2.840.10008.5.1.4.1.2.3.3"
	CompositeInstanceRootRetrieveMove                 = "1.2.840.10008.5.1.4.1.2.4.2"
	CompositeInstanceRootRetrieveGet                  = "1.2.840.10008.5.1.4.1.2.4.3"
)

// Workflow Services
const (
	ModalityWorklistInformationModelFind   = "1.2.840.10008.5.1.4.31"
	ModalityPerformedProcedureStepSOPClass = "1.2.840.10008.3.1.2.3.3"
	StorageCommitmentPushModelSOPClass     = "1.2.840.10008.1.20.1"
	UnifiedProcedureStepPushSOPClass       = "1.2.840.10008.5.1.4.34.6.1"
	UnifiedProcedureStepWatchSOPClass      = "1.2.840.10008.5.1.4.34.6.2"
	UnifiedProcedureStepPullSOPClass       = "1.2.840.10008.5.1.4.34.6.3"
)

// Category groups SOP Classes by the DIMSE service that uses them.
type Category string

const (
	CategoryUnknown            Category = "Unknown"
	CategoryVerification       Category = "Verification"
	CategoryStorage            Category = "Storage"
	CategoryQueryRetrieve      Category = "Query/Retrieve"
	CategoryWorklist           Category = "Worklist"
	CategoryMPPS               Category = "MPPS"
	CategoryStorageCommitment  Category = "Storage Commitment"
	CategoryProcedureStep      Category = "Unified Procedure Step"
	CategoryApplicationContext Category = "Application Context"
)

func sop(value, desc string, category Category) AbstractSyntax {
	return AbstractSyntax{Entry: entry(value, desc), Category: category}
}

var builtins = []AbstractSyntax{
	sop(ApplicationContextUID, "DICOM Application Context Name", CategoryApplicationContext),
	sop(VerificationSOPClass, "Verification SOP Class", CategoryVerification),

	sop(ComputedRadiographyImageStorage, "Computed Radiography Image Storage", CategoryStorage),
	sop(DigitalXRayImageStorageForPresentation, "Digital X-Ray Image Storage - For Presentation", CategoryStorage),
	sop(DigitalXRayImageStorageForProcessing, "Digital X-Ray Image Storage - For Processing", CategoryStorage),
	sop(DigitalMammographyXRayImageStorage, "Digital Mammography X-Ray Image Storage - For Presentation", CategoryStorage),
	sop(CTImageStorage, "CT Image Storage", CategoryStorage),
	sop(EnhancedCTImageStorage, "Enhanced CT Image Storage", CategoryStorage),
	sop(UltrasoundMultiFrameImageStorage, "Ultrasound Multi-frame Image Storage", CategoryStorage),
	sop(MRImageStorage, "MR Image Storage", CategoryStorage),
	sop(EnhancedMRImageStorage, "Enhanced MR Image Storage", CategoryStorage),
	sop(MRSpectroscopyStorage, "MR Spectroscopy Storage", CategoryStorage),
	sop(UltrasoundImageStorage, "Ultrasound Image Storage", CategoryStorage),
	sop(SecondaryCaptureImageStorage, "Secondary Capture Image Storage", CategoryStorage),
	sop(MultiFrameTrueColorSecondaryCapture, "Multi-frame True Color Secondary Capture Image Storage", CategoryStorage),
	sop(GrayscaleSoftcopyPresentationState, "Grayscale Softcopy Presentation State Storage", CategoryStorage),
	sop(XRayAngiographicImageStorage, "X-Ray Angiographic Image Storage", CategoryStorage),
	sop(XRayRadiofluoroscopicImageStorage, "X-Ray Radiofluoroscopic Image Storage", CategoryStorage),
	sop(BreastTomosynthesisImageStorage, "Breast Tomosynthesis Image Storage", CategoryStorage),
	sop(NuclearMedicineImageStorage, "Nuclear Medicine Image Storage", CategoryStorage),
	sop(VLEndoscopicImageStorage, "VL Endoscopic Image Storage", CategoryStorage),
	sop(VLPhotographicImageStorage, "VL Photographic Image Storage", CategoryStorage),
	sop(VLWholeSlideMicroscopyImageStorage, "VL Whole Slide Microscopy Image Storage", CategoryStorage),
	sop(BasicTextSRStorage, "Basic Text SR Storage", CategoryStorage),
	sop(EnhancedSRStorage, "Enhanced SR Storage", CategoryStorage),
	sop(ComprehensiveSRStorage, "Comprehensive SR Storage", CategoryStorage),
	sop(KeyObjectSelectionDocumentStorage, "Key Object Selection Document Storage", CategoryStorage),
	sop(EncapsulatedPDFStorage, "Encapsulated PDF Storage", CategoryStorage),
	sop(EncapsulatedCDAStorage, "Encapsulated CDA Storage", CategoryStorage),
	sop(PETImageStorage, "Positron Emission Tomography Image Storage", CategoryStorage),
	sop(EnhancedPETImageStorage, "Enhanced PET Image Storage", CategoryStorage),
	sop(RTImageStorage, "RT Image Storage", CategoryStorage),
	sop(RTDoseStorage, "RT Dose Storage", CategoryStorage),
	sop(RTStructureSetStorage, "RT Structure Set Storage", CategoryStorage),
	sop(RTPlanStorage, "RT Plan Storage", CategoryStorage),

	sop(PatientRootQueryRetrieveInformationModelFind, "Patient Root Query/Retrieve Information Model - FIND", CategoryQueryRetrieve),
	sop(PatientRootQueryRetrieveInformationModelMove, "Patient Root Query/Retrieve Information Model - MOVE", CategoryQueryRetrieve),
	sop(PatientRootQueryRetrieveInformationModelGet, "Patient Root Query/Retrieve Information Model - GET", CategoryQueryRetrieve),
	sop(StudyRootQueryRetrieveInformationModelFind, "Study Root Query/Retrieve Information Model - FIND", CategoryQueryRetrieve),
	sop(StudyRootQueryRetrieveInformationModelMove, "Study Root Query/Retrieve Information Model - MOVE", CategoryQueryRetrieve),
	sop(StudyRootQueryRetrieveInformationModelGet, "Study Root Query/Retrieve Information Model - GET", CategoryQueryRetrieve),
	sop(PatientStudyOnlyQueryRetrieveInformationModelFind, "Patient/Study Only Query/Retrieve Information Model - FIND (Retired)", CategoryQueryRetrieve),
	sop(PatientStudyOnlyQueryRetrieveInformationModelMove, "Patient/Study Only Query/Retrieve Information Model - MOVE (Retired)", CategoryQueryRetrieve),
	sop(PatientStudyOnlyQueryRetrieveInformationModelGet, "Patient/Study Only Query/Retrieve Information Model - GET (Retired)", CategoryQueryRetrieve),
	sop(CompositeInstanceRootRetrieveMove, "Composite Instance Root Retrieve - MOVE", CategoryQueryRetrieve),
	sop(CompositeInstanceRootRetrieveGet, "Composite Instance Root Retrieve - GET", CategoryQueryRetrieve),

	sop(ModalityWorklistInformationModelFind, "Modality Worklist Information Model - FIND", CategoryWorklist),
	sop(ModalityPerformedProcedureStepSOPClass, "Modality Performed Procedure Step SOP Class", CategoryMPPS),
	sop(StorageCommitmentPushModelSOPClass, "Storage Commitment Push Model SOP Class", CategoryStorageCommitment),
	sop(UnifiedProcedureStepPushSOPClass, "Unified Procedure Step - Push SOP Class", CategoryProcedureStep),
	sop(UnifiedProcedureStepWatchSOPClass, "Unified Procedure Step - Watch SOP Class", CategoryProcedureStep),
	sop(UnifiedProcedureStepPullSOPClass, "Unified Procedure Step - Pull SOP Class", CategoryProcedureStep),
}
